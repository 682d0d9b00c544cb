package jobs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/meridian-console/meridian-console/internal/audit"
	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
)

func newTestExporter(t *testing.T, dir string) *Exporter {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tc, err := transport.New(transport.Config{BaseURL: srv.URL, Timeout: 2 * time.Second, Logger: logger})
	require.NoError(t, err)

	client := audit.NewClient(fallback.NewPolicy(logger), tc, audit.NewStore(0))
	return NewExporter(client, dir, logger)
}

func TestHandleAuditExportWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exporter := newTestExporter(t, dir)

	task, err := NewAuditExportTask(AuditExportPayload{RequestedBy: "usr-0001"})
	require.NoError(t, err)
	require.NoError(t, exporter.HandleAuditExport(context.Background(), task))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasPrefix(entries[0].Name(), "audit-"))
	require.True(t, strings.HasSuffix(entries[0].Name(), ".csv"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "id,actor,action,entity,entity_id,ip,at"))
}

func TestHandleAuditExportBadPayloadSkipsRetry(t *testing.T) {
	exporter := newTestExporter(t, t.TempDir())

	task := asynq.NewTask(TaskTypeAuditExport, []byte("not json"))
	err := exporter.HandleAuditExport(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestAuditExportTaskPayloadRoundTrip(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	task, err := NewAuditExportTask(AuditExportPayload{From: from, RequestedBy: "usr-0002"})
	require.NoError(t, err)
	require.Equal(t, TaskTypeAuditExport, task.Type())

	var decoded AuditExportPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	require.Equal(t, from, decoded.From)
	require.Equal(t, "usr-0002", decoded.RequestedBy)
}
