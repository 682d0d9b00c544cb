package companies

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/shared"
	"github.com/meridian-console/meridian-console/internal/store"
)

const basePath = "/api/admin/companies"

// Client is the fallback-aware company client consumed by the UI.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[Company]
	store  *store.Store[Company]
}

func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[Company]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[Company](tc, basePath),
		store:  local,
	}
}

func (c *Client) List(ctx context.Context, f Filter) (query.Page[Company], error) {
	return fallback.Run(ctx, c.policy, "companies", "list",
		func(ctx context.Context) (query.Page[Company], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[Company], error) { return c.store.List(ctx, f.query()) },
	)
}

func (c *Client) Get(ctx context.Context, id string) (Company, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Company{}, err
	}
	return fallback.Run(ctx, c.policy, "companies", "get",
		func(ctx context.Context) (Company, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (Company, error) { return c.store.Get(ctx, id) },
	)
}

func (c *Client) Create(ctx context.Context, req CreateCompanyRequest) (Company, error) {
	if err := shared.RequireFields(map[string]any{"name": req.Name, "domain": req.Domain}); err != nil {
		return Company{}, err
	}
	return fallback.Run(ctx, c.policy, "companies", "create",
		func(ctx context.Context) (Company, error) { return c.live.Create(ctx, req) },
		func(ctx context.Context) (Company, error) { return c.store.Insert(ctx, newCompany(req)) },
	)
}

func (c *Client) Update(ctx context.Context, id string, req UpdateCompanyRequest) (Company, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Company{}, err
	}
	return fallback.Run(ctx, c.policy, "companies", "update",
		func(ctx context.Context) (Company, error) { return c.live.Update(ctx, id, req) },
		func(ctx context.Context) (Company, error) {
			return c.store.Update(ctx, id, func(rec *Company) { applyUpdate(rec, req) })
		},
	)
}

func (c *Client) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return shared.DeleteResult{}, err
	}
	return fallback.Run(ctx, c.policy, "companies", "delete",
		func(ctx context.Context) (shared.DeleteResult, error) { return c.live.Delete(ctx, id) },
		func(ctx context.Context) (shared.DeleteResult, error) { return c.store.Delete(ctx, id) },
	)
}

func (c *Client) Bulk(ctx context.Context, req shared.BulkRequest) (shared.BulkResult, error) {
	if err := shared.RequireFields(map[string]any{"operation": req.Operation, "ids": req.IDs}); err != nil {
		return shared.BulkResult{}, err
	}
	return fallback.Run(ctx, c.policy, "companies", "bulk",
		func(ctx context.Context) (shared.BulkResult, error) { return c.live.Bulk(ctx, req) },
		func(ctx context.Context) (shared.BulkResult, error) {
			return c.store.Bulk(ctx, req.IDs, req.Operation)
		},
	)
}

func newCompany(req CreateCompanyRequest) Company {
	now := time.Now().UTC()
	plan := req.Plan
	if plan == "" {
		plan = PlanFree
	}
	return Company{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Domain:        req.Domain,
		Plan:          plan,
		IsActive:      true,
		EmployeeCount: req.EmployeeCount,
		Country:       req.Country,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func applyUpdate(c *Company, req UpdateCompanyRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Plan != nil {
		c.Plan = *req.Plan
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.EmployeeCount != nil {
		c.EmployeeCount = *req.EmployeeCount
	}
	if req.Country != nil {
		c.Country = *req.Country
	}
	c.UpdatedAt = time.Now().UTC()
}
