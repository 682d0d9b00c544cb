package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/shared"
)

func newTestClient(t *testing.T, upstream http.Handler) (*Client, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		upstream.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	tc, err := transport.New(transport.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	policy := fallback.NewPolicy(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewClient(policy, tc, NewStore(0)), &hits
}

func TestListUsesLiveBackendWhenHealthy(t *testing.T) {
	live := query.Page[User]{
		Data:       []User{{ID: "remote-1", Email: "remote@meridian.test", Name: "Remote"}},
		Total:      1,
		Page:       1,
		PerPage:    20,
		TotalPages: 1,
	}
	client, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(live))
	}))

	page, err := client.List(context.Background(), Filter{Page: 1, PerPage: 20})
	require.NoError(t, err)
	require.Equal(t, live, page)
	require.EqualValues(t, 1, hits.Load())
}

func TestListFallsBackOnServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))

	page, err := client.List(context.Background(), Filter{Page: 1, PerPage: 20})
	require.NoError(t, err)
	require.Equal(t, 6, page.Total)
	require.Len(t, page.Data, 6)
}

func TestListFallbackKeepsPaginationShape(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	// Grow the seeded store to 25 users so pagination is observable.
	ctx := context.Background()
	for i := 7; i <= 25; i++ {
		req := CreateUserRequest{
			Email: fmt.Sprintf("user%02d@meridian.test", i),
			Name:  fmt.Sprintf("User %02d", i),
		}
		_, err := client.Create(ctx, req)
		require.NoError(t, err)
	}

	page, err := client.List(ctx, Filter{Page: 2, PerPage: 10})
	require.NoError(t, err)
	require.Equal(t, 25, page.Total)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 2, page.Page)
	require.Len(t, page.Data, 10)
}

func TestCreateValidatesBeforeAnyCall(t *testing.T) {
	client, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.Create(context.Background(), CreateUserRequest{Role: RoleAdmin})
	var missing *shared.MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"email", "name"}, missing.Fields)
	require.EqualValues(t, 0, hits.Load())
}

func TestCreateFallbackRejectsDuplicateEmail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.Create(context.Background(), CreateUserRequest{
		Email: "ana.silva@meridian.test",
		Name:  "Ana Again",
	})
	require.ErrorIs(t, err, shared.ErrConflict)
}

func TestGetFallbackNotFoundPropagates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.Get(context.Background(), "usr-9999")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpdateMergesOnFallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	name := "Ana S. Prado"
	got, err := client.Update(context.Background(), "usr-0001", UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, got.Name)
	require.Equal(t, "ana.silva@meridian.test", got.Email)
}

func TestBulkFallbackSkipsUnknownIDs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	res, err := client.Bulk(context.Background(), shared.BulkRequest{
		Operation: "deactivate",
		IDs:       []string{"usr-0001", "usr-9999", "usr-0002"},
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 2, res.AffectedCount)
}

func TestBulkRequiresOperationAndIDs(t *testing.T) {
	client, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.Bulk(context.Background(), shared.BulkRequest{})
	var missing *shared.MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"ids", "operation"}, missing.Fields)
	require.EqualValues(t, 0, hits.Load())
}
