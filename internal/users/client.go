package users

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

const basePath = "/api/admin/users"

// Client is the only user surface the UI talks to. Reads and mutations try
// the live backend first and fall back to the local store on any transport
// failure.
type Client struct {
	policy *fallback.Policy
	live   transport.Resource[User]
	store  *store.Store[User]
}

// NewClient composes the live resource and the fallback store.
func NewClient(policy *fallback.Policy, tc *transport.Client, local *store.Store[User]) *Client {
	return &Client{
		policy: policy,
		live:   transport.NewResource[User](tc, basePath),
		store:  local,
	}
}

// List returns one page of users matching the filter.
func (c *Client) List(ctx context.Context, f Filter) (query.Page[User], error) {
	return fallback.Run(ctx, c.policy, "users", "list",
		func(ctx context.Context) (query.Page[User], error) { return c.live.List(ctx, f.params()) },
		func(ctx context.Context) (query.Page[User], error) { return c.store.List(ctx, f.query()) },
	)
}

// Get returns a single user by id.
func (c *Client) Get(ctx context.Context, id string) (User, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return User{}, err
	}
	return fallback.Run(ctx, c.policy, "users", "get",
		func(ctx context.Context) (User, error) { return c.live.Get(ctx, id) },
		func(ctx context.Context) (User, error) { return c.store.Get(ctx, id) },
	)
}

// Create registers a new user. Fails with MissingParameter before any call
// is made when required fields are absent, and with Conflict when the email
// is already taken.
func (c *Client) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	if err := shared.RequireFields(map[string]any{"email": req.Email, "name": req.Name}); err != nil {
		return User{}, err
	}
	return fallback.Run(ctx, c.policy, "users", "create",
		func(ctx context.Context) (User, error) { return c.live.Create(ctx, req) },
		func(ctx context.Context) (User, error) { return c.store.Insert(ctx, newUser(req)) },
	)
}

// Update merges the provided fields into an existing user.
func (c *Client) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return User{}, err
	}
	return fallback.Run(ctx, c.policy, "users", "update",
		func(ctx context.Context) (User, error) { return c.live.Update(ctx, id, req) },
		func(ctx context.Context) (User, error) {
			return c.store.Update(ctx, id, func(u *User) { applyUpdate(u, req) })
		},
	)
}

// Delete removes a user.
func (c *Client) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	if err := shared.RequireFields(map[string]any{"id": id}); err != nil {
		return shared.DeleteResult{}, err
	}
	return fallback.Run(ctx, c.policy, "users", "delete",
		func(ctx context.Context) (shared.DeleteResult, error) { return c.live.Delete(ctx, id) },
		func(ctx context.Context) (shared.DeleteResult, error) { return c.store.Delete(ctx, id) },
	)
}

// Bulk applies activate/deactivate/verify to a set of user ids.
func (c *Client) Bulk(ctx context.Context, req shared.BulkRequest) (shared.BulkResult, error) {
	if err := shared.RequireFields(map[string]any{"operation": req.Operation, "ids": req.IDs}); err != nil {
		return shared.BulkResult{}, err
	}
	return fallback.Run(ctx, c.policy, "users", "bulk",
		func(ctx context.Context) (shared.BulkResult, error) { return c.live.Bulk(ctx, req) },
		func(ctx context.Context) (shared.BulkResult, error) {
			return c.store.Bulk(ctx, req.IDs, req.Operation)
		},
	)
}

func newUser(req CreateUserRequest) User {
	now := time.Now().UTC()
	role := req.Role
	if role == "" {
		role = RoleViewer
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      role,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func applyUpdate(u *User, req UpdateUserRequest) {
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	u.UpdatedAt = time.Now().UTC()
}
