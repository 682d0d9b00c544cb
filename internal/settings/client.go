package settings

import (
	"context"
	"time"

	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/shared"
	"github.com/meridian-console/meridian-console/internal/store"
)

const basePath = "/api/admin/settings"

// Client is the fallback-aware settings client consumed by the UI.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[Setting]
	store  *store.Store[Setting]
}

func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[Setting]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[Setting](tc, basePath),
		store:  local,
	}
}

func (c *Client) List(ctx context.Context, f Filter) (query.Page[Setting], error) {
	return fallback.Run(ctx, c.policy, "settings", "list",
		func(ctx context.Context) (query.Page[Setting], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[Setting], error) { return c.store.List(ctx, f.query()) },
	)
}

func (c *Client) Get(ctx context.Context, id string) (Setting, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Setting{}, err
	}
	return fallback.Run(ctx, c.policy, "settings", "get",
		func(ctx context.Context) (Setting, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (Setting, error) { return c.store.Get(ctx, id) },
	)
}

func (c *Client) Update(ctx context.Context, id string, req UpdateSettingRequest) (Setting, error) {
	if err := shared.RequireFields(map[string]any{"id": id, "value": req.Value}); err != nil {
		return Setting{}, err
	}
	return fallback.Run(ctx, c.policy, "settings", "update",
		func(ctx context.Context) (Setting, error) { return c.live.Update(ctx, id, req) },
		func(ctx context.Context) (Setting, error) {
			return c.store.Update(ctx, id, func(rec *Setting) {
				rec.Value = *req.Value
				if req.UpdatedBy != "" {
					rec.UpdatedBy = req.UpdatedBy
				}
				rec.UpdatedAt = time.Now().UTC()
			})
		},
	)
}
