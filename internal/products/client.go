package products

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

const basePath = "/api/admin/products"

// Client is the fallback-aware product client consumed by the UI.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[Product]
	store  *store.Store[Product]
}

func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[Product]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[Product](tc, basePath),
		store:  local,
	}
}

func (c *Client) List(ctx context.Context, f Filter) (query.Page[Product], error) {
	return fallback.Run(ctx, c.policy, "products", "list",
		func(ctx context.Context) (query.Page[Product], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[Product], error) { return c.store.List(ctx, f.query()) },
	)
}

func (c *Client) Get(ctx context.Context, id string) (Product, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Product{}, err
	}
	return fallback.Run(ctx, c.policy, "products", "get",
		func(ctx context.Context) (Product, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (Product, error) { return c.store.Get(ctx, id) },
	)
}

// Create adds a catalog entry. A colliding common_product_id fails with
// Conflict and leaves the store untouched.
func (c *Client) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := shared.RequireFields(map[string]any{"common_product_id": req.CommonProductID, "name": req.Name}); err != nil {
		return Product{}, err
	}
	return fallback.Run(ctx, c.policy, "products", "create",
		func(ctx context.Context) (Product, error) { return c.live.Create(ctx, req) },
		func(ctx context.Context) (Product, error) { return c.store.Insert(ctx, newProduct(req)) },
	)
}

func (c *Client) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Product{}, err
	}
	return fallback.Run(ctx, c.policy, "products", "update",
		func(ctx context.Context) (Product, error) { return c.live.Update(ctx, id, req) },
		func(ctx context.Context) (Product, error) {
			return c.store.Update(ctx, id, func(rec *Product) { applyUpdate(rec, req) })
		},
	)
}

func (c *Client) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return shared.DeleteResult{}, err
	}
	return fallback.Run(ctx, c.policy, "products", "delete",
		func(ctx context.Context) (shared.DeleteResult, error) { return c.live.Delete(ctx, id) },
		func(ctx context.Context) (shared.DeleteResult, error) { return c.store.Delete(ctx, id) },
	)
}

func (c *Client) Bulk(ctx context.Context, req shared.BulkRequest) (shared.BulkResult, error) {
	if err := shared.RequireFields(map[string]any{"operation": req.Operation, "ids": req.IDs}); err != nil {
		return shared.BulkResult{}, err
	}
	return fallback.Run(ctx, c.policy, "products", "bulk",
		func(ctx context.Context) (shared.BulkResult, error) { return c.live.Bulk(ctx, req) },
		func(ctx context.Context) (shared.BulkResult, error) {
			return c.store.Bulk(ctx, req.IDs, req.Operation)
		},
	)
}

func newProduct(req CreateProductRequest) Product {
	now := time.Now().UTC()
	return Product{
		ID:              uuid.NewString(),
		CommonProductID: req.CommonProductID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Stock:           req.Stock,
		IsAvailable:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func applyUpdate(p *Product, req UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	p.UpdatedAt = time.Now().UTC()
}
