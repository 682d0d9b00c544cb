package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/meridian-console/meridian-console/internal/platform/cache"
	"github.com/meridian-console/meridian-console/internal/shared"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "/api", Logger: discardLogger()})
	require.Error(t, err)
}

func TestStatusMapsToErrorKind(t *testing.T) {
	cases := []struct {
		status int
		kind   shared.Kind
	}{
		{http.StatusUnauthorized, shared.KindAuthRequired},
		{http.StatusForbidden, shared.KindForbidden},
		{http.StatusNotFound, shared.KindNotFound},
		{http.StatusInternalServerError, shared.KindServerError},
		{http.StatusBadGateway, shared.KindServerError},
		{http.StatusTeapot, shared.KindUnexpected},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		c, err := New(Config{BaseURL: srv.URL, Logger: discardLogger()})
		require.NoError(t, err)

		var out note
		err = c.Do(context.Background(), http.MethodGet, "/notes/n-1", nil, nil, &out)
		srv.Close()

		var terr *shared.TransportError
		require.ErrorAs(t, err, &terr)
		require.Equal(t, tc.status, terr.Status)
		require.Equal(t, tc.kind, terr.Kind)
	}
}

func TestDoSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sekret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"n-1","body":"hello"}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Token: "sekret", Logger: discardLogger()})
	require.NoError(t, err)

	var out note
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/notes/n-1", nil, nil, &out))
	require.Equal(t, "hello", out.Body)
}

func TestDoReportsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": `))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Logger: discardLogger()})
	require.NoError(t, err)

	var out note
	err = c.Do(context.Background(), http.MethodGet, "/notes/n-1", nil, nil, &out)
	var terr *shared.TransportError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, shared.KindUnexpected, terr.Kind)
}

func TestGetCachedServesSecondReadFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"n-1","body":"cached"}`))
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Logger:  discardLogger(),
		Cache:   cache.NewResponseCache(rdb, time.Minute),
	})
	require.NoError(t, err)

	ctx := context.Background()
	var first, second note
	require.NoError(t, c.GetCached(ctx, "/notes", nil, &first))
	require.NoError(t, c.GetCached(ctx, "/notes", nil, &second))

	require.Equal(t, first, second)
	require.EqualValues(t, 1, hits.Load())
}

func TestGetCachedUpstreamErrorIsNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"n-1","body":"recovered"}`))
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Logger:  discardLogger(),
		Cache:   cache.NewResponseCache(rdb, time.Minute),
	})
	require.NoError(t, err)

	ctx := context.Background()
	var out note
	err = c.GetCached(ctx, "/notes", nil, &out)
	var terr *shared.TransportError
	require.ErrorAs(t, err, &terr)

	fail.Store(false)
	require.NoError(t, c.GetCached(ctx, "/notes", nil, &out))
	require.Equal(t, "recovered", out.Body)
}
