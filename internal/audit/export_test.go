package audit

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/internal/query"
)

func newTestClient(t *testing.T, upstream http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tc, err := transport.New(transport.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Logger:  logger,
	})
	require.NoError(t, err)
	return NewClient(fallback.NewPolicy(logger), tc, NewStore(0))
}

func TestExportFromLocalStore(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	out, err := client.Export(context.Background(), Filter{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"id", "actor", "action", "entity", "entity_id", "ip", "at"}, rows[0])
	require.Len(t, rows, 7)

	for _, row := range rows[1:] {
		require.NotEmpty(t, row[0])
		_, err := time.Parse(time.RFC3339, row[6])
		require.NoError(t, err)
	}
}

func TestExportFetchesEveryLivePage(t *testing.T) {
	at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	total := 230
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		start := (page - 1) * perPage
		end := start + perPage
		if end > total {
			end = total
		}
		data := make([]Entry, 0, end-start)
		for i := start; i < end; i++ {
			data = append(data, Entry{
				ID:     "aud-" + strconv.Itoa(i),
				Actor:  "usr-0001",
				Action: "update",
				Entity: "user",
				At:     at,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(query.Page[Entry]{
			Data:       data,
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: 3,
		}))
	}))

	out, err := client.Export(context.Background(), Filter{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, total+1)

	// Pages must be reassembled in order.
	require.Equal(t, "aud-0", rows[1][0])
	require.Equal(t, "aud-"+strconv.Itoa(total-1), rows[total][0])
}

func TestExportFilterApplies(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	out, err := client.Export(context.Background(), Filter{Entities: []string{"user"}})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows[1:] {
		require.Equal(t, "user", row[3])
	}
}
