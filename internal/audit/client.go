package audit

import (
	"context"

	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/shared"
	"github.com/meridian-console/meridian-console/internal/store"
)

const basePath = "/api/admin/audit-logs"

// Client is the read-only fallback-aware audit client.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[Entry]
	store  *store.Store[Entry]
}

func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[Entry]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[Entry](tc, basePath),
		store:  local,
	}
}

func (c *Client) List(ctx context.Context, f Filter) (query.Page[Entry], error) {
	return fallback.Run(ctx, c.policy, "audit_logs", "list",
		func(ctx context.Context) (query.Page[Entry], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[Entry], error) { return c.store.List(ctx, f.query()) },
	)
}

func (c *Client) Get(ctx context.Context, id string) (Entry, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Entry{}, err
	}
	return fallback.Run(ctx, c.policy, "audit_logs", "get",
		func(ctx context.Context) (Entry, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (Entry, error) { return c.store.Get(ctx, id) },
	)
}
