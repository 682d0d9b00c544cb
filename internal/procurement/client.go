package procurement

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

const basePath = "/api/admin/purchase-orders"

// Client is the fallback-aware purchase-order client consumed by the UI.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[PurchaseOrder]
	store  *store.Store[PurchaseOrder]
}

func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[PurchaseOrder]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[PurchaseOrder](tc, basePath),
		store:  local,
	}
}

func (c *Client) List(ctx context.Context, f Filter) (query.Page[PurchaseOrder], error) {
	return fallback.Run(ctx, c.policy, "purchase_orders", "list",
		func(ctx context.Context) (query.Page[PurchaseOrder], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[PurchaseOrder], error) { return c.store.List(ctx, f.query()) },
	)
}

func (c *Client) Get(ctx context.Context, id string) (PurchaseOrder, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return PurchaseOrder{}, err
	}
	return fallback.Run(ctx, c.policy, "purchase_orders", "get",
		func(ctx context.Context) (PurchaseOrder, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (PurchaseOrder, error) { return c.store.Get(ctx, id) },
	)
}

func (c *Client) Create(ctx context.Context, req CreatePurchaseOrderRequest) (PurchaseOrder, error) {
	if err := shared.RequireFields(map[string]any{
		"po_number":  req.PONumber,
		"company_id": req.CompanyID,
		"supplier":   req.Supplier,
	}); err != nil {
		return PurchaseOrder{}, err
	}
	return fallback.Run(ctx, c.policy, "purchase_orders", "create",
		func(ctx context.Context) (PurchaseOrder, error) { return c.live.Create(ctx, req) },
		func(ctx context.Context) (PurchaseOrder, error) { return c.store.Insert(ctx, newPurchaseOrder(req)) },
	)
}

func (c *Client) Update(ctx context.Context, id string, req UpdatePurchaseOrderRequest) (PurchaseOrder, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return PurchaseOrder{}, err
	}
	return fallback.Run(ctx, c.policy, "purchase_orders", "update",
		func(ctx context.Context) (PurchaseOrder, error) { return c.live.Update(ctx, id, req) },
		func(ctx context.Context) (PurchaseOrder, error) {
			return c.store.Update(ctx, id, func(rec *PurchaseOrder) { applyUpdate(rec, req) })
		},
	)
}

func (c *Client) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return shared.DeleteResult{}, err
	}
	return fallback.Run(ctx, c.policy, "purchase_orders", "delete",
		func(ctx context.Context) (shared.DeleteResult, error) { return c.live.Delete(ctx, id) },
		func(ctx context.Context) (shared.DeleteResult, error) { return c.store.Delete(ctx, id) },
	)
}

func (c *Client) Bulk(ctx context.Context, req shared.BulkRequest) (shared.BulkResult, error) {
	if err := shared.RequireFields(map[string]any{"operation": req.Operation, "ids": req.IDs}); err != nil {
		return shared.BulkResult{}, err
	}
	return fallback.Run(ctx, c.policy, "purchase_orders", "bulk",
		func(ctx context.Context) (shared.BulkResult, error) { return c.live.Bulk(ctx, req) },
		func(ctx context.Context) (shared.BulkResult, error) {
			return c.store.Bulk(ctx, req.IDs, req.Operation)
		},
	)
}

func newPurchaseOrder(req CreatePurchaseOrderRequest) PurchaseOrder {
	now := time.Now().UTC()
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return PurchaseOrder{
		ID:          uuid.NewString(),
		PONumber:    req.PONumber,
		CompanyID:   req.CompanyID,
		Supplier:    req.Supplier,
		Status:      StatusDraft,
		TotalAmount: req.TotalAmount,
		Currency:    currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func applyUpdate(po *PurchaseOrder, req UpdatePurchaseOrderRequest) {
	if req.Supplier != nil {
		po.Supplier = *req.Supplier
	}
	if req.Status != nil {
		po.Status = *req.Status
	}
	if req.TotalAmount != nil {
		po.TotalAmount = *req.TotalAmount
	}
	if req.Currency != nil {
		po.Currency = *req.Currency
	}
	po.UpdatedAt = time.Now().UTC()
}
