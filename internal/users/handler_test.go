package users

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/meridian-console/meridian-console/internal/platform/httpx"
	"github.com/meridian-console/meridian-console/internal/query"
)

func newTestRouter(t *testing.T, upstream http.Handler) http.Handler {
	t.Helper()
	client, _ := newTestClient(t, upstream)
	r := chi.NewRouter()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r.Route("/api/admin/users", NewHandler(logger, client).MountRoutes)
	return r
}

func failingUpstream() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
}

func TestHandlerListServesFallbackPage(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users?is_active=false&per_page=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page query.Page[User]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Equal(t, 2, page.Total)
	require.Equal(t, 10, page.PerPage)
	for _, u := range page.Data {
		require.False(t, u.IsActive)
	}
}

func TestHandlerGetUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users/usr-9999", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, "Not Found", problem.Title)
}

func TestHandlerCreateRejectsInvalidEmail(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	body := strings.NewReader(`{"email":"not-an-email","name":"X"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCreateFallsBackToStore(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	body := strings.NewReader(`{"email":"new.user@meridian.test","name":"New User","role":"manager"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "manager", created.Role)
	require.True(t, created.IsActive)
}

func TestHandlerDuplicateEmailReturns409(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	body := strings.NewReader(`{"email":"ana.silva@meridian.test","name":"Ana Again"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandlerBulkMissingFieldsReturns400WithNames(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/bulk", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, []string{"ids", "operation"}, problem.Fields)
}

func TestHandlerDeleteReturnsResult(t *testing.T) {
	router := newTestRouter(t, failingUpstream())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/users/usr-0006", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}
