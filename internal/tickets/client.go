package tickets

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

const basePath = "/api/admin/tickets"

// Client is the fallback-aware ticket client consumed by the UI.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[Ticket]
	store  *store.Store[Ticket]
}

func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[Ticket]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[Ticket](tc, basePath),
		store:  local,
	}
}

func (c *Client) List(ctx context.Context, f Filter) (query.Page[Ticket], error) {
	return fallback.Run(ctx, c.policy, "tickets", "list",
		func(ctx context.Context) (query.Page[Ticket], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[Ticket], error) { return c.store.List(ctx, f.query()) },
	)
}

func (c *Client) Get(ctx context.Context, id string) (Ticket, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Ticket{}, err
	}
	return fallback.Run(ctx, c.policy, "tickets", "get",
		func(ctx context.Context) (Ticket, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (Ticket, error) { return c.store.Get(ctx, id) },
	)
}

func (c *Client) Create(ctx context.Context, req CreateTicketRequest) (Ticket, error) {
	if err := shared.RequireFields(map[string]any{"subject": req.Subject, "requester_email": req.RequesterEmail}); err != nil {
		return Ticket{}, err
	}
	return fallback.Run(ctx, c.policy, "tickets", "create",
		func(ctx context.Context) (Ticket, error) { return c.live.Create(ctx, req) },
		func(ctx context.Context) (Ticket, error) { return c.store.Insert(ctx, newTicket(req)) },
	)
}

func (c *Client) Update(ctx context.Context, id string, req UpdateTicketRequest) (Ticket, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return Ticket{}, err
	}
	return fallback.Run(ctx, c.policy, "tickets", "update",
		func(ctx context.Context) (Ticket, error) { return c.live.Update(ctx, id, req) },
		func(ctx context.Context) (Ticket, error) {
			return c.store.Update(ctx, id, func(rec *Ticket) { applyUpdate(rec, req) })
		},
	)
}

func (c *Client) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return shared.DeleteResult{}, err
	}
	return fallback.Run(ctx, c.policy, "tickets", "delete",
		func(ctx context.Context) (shared.DeleteResult, error) { return c.live.Delete(ctx, id) },
		func(ctx context.Context) (shared.DeleteResult, error) { return c.store.Delete(ctx, id) },
	)
}

func (c *Client) Bulk(ctx context.Context, req shared.BulkRequest) (shared.BulkResult, error) {
	if err := shared.RequireFields(map[string]any{"operation": req.Operation, "ids": req.IDs}); err != nil {
		return shared.BulkResult{}, err
	}
	return fallback.Run(ctx, c.policy, "tickets", "bulk",
		func(ctx context.Context) (shared.BulkResult, error) { return c.live.Bulk(ctx, req) },
		func(ctx context.Context) (shared.BulkResult, error) {
			return c.store.Bulk(ctx, req.IDs, req.Operation)
		},
	)
}

func newTicket(req CreateTicketRequest) Ticket {
	now := time.Now().UTC()
	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	return Ticket{
		ID:             uuid.NewString(),
		Subject:        req.Subject,
		RequesterEmail: req.RequesterEmail,
		Status:         StatusOpen,
		Priority:       priority,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func applyUpdate(t *Ticket, req UpdateTicketRequest) {
	if req.Subject != nil {
		t.Subject = *req.Subject
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Assignee != nil {
		assignee := *req.Assignee
		t.Assignee = &assignee
	}
	t.UpdatedAt = time.Now().UTC()
}
