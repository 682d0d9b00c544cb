package transport

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/shared"
)

// Resource exposes the uniform live-path operations for one entity under a
// fixed base path. The decoded shapes match the local store's exactly; that
// symmetry is what lets the fallback swap one for the other unnoticed.
type Resource[T any] struct {
	client *Client
	base   string
}

// NewResource builds a Resource rooted at base, e.g. "/api/admin/users".
func NewResource[T any](client *Client, base string) Resource[T] {
	return Resource[T]{client: client, base: base}
}

// List fetches one page of records.
func (r Resource[T]) List(ctx context.Context, params url.Values) (query.Page[T], error) {
	var page query.Page[T]
	if err := r.client.GetCached(ctx, r.base, params, &page); err != nil {
		return query.Page[T]{}, err
	}
	return page, nil
}

// Get fetches a single record by id.
func (r Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var rec T
	if err := r.client.Do(ctx, http.MethodGet, r.item(id), nil, nil, &rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Create posts a new record.
func (r Resource[T]) Create(ctx context.Context, body any) (T, error) {
	var rec T
	if err := r.client.Do(ctx, http.MethodPost, r.base, nil, body, &rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update applies a partial update to an existing record.
func (r Resource[T]) Update(ctx context.Context, id string, body any) (T, error) {
	var rec T
	if err := r.client.Do(ctx, http.MethodPut, r.item(id), nil, body, &rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Delete removes a record.
func (r Resource[T]) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	var out shared.DeleteResult
	if err := r.client.Do(ctx, http.MethodDelete, r.item(id), nil, nil, &out); err != nil {
		return shared.DeleteResult{}, err
	}
	return out, nil
}

// Bulk applies a named transition to a set of ids.
func (r Resource[T]) Bulk(ctx context.Context, req shared.BulkRequest) (shared.BulkResult, error) {
	var out shared.BulkResult
	if err := r.client.Do(ctx, http.MethodPost, r.base+"/bulk", nil, req, &out); err != nil {
		return shared.BulkResult{}, err
	}
	return out, nil
}

func (r Resource[T]) item(id string) string {
	return r.base + "/" + url.PathEscape(id)
}
