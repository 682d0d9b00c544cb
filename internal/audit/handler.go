package audit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-console/meridian-console/internal/platform/httpx"
	"github.com/meridian-console/meridian-console/internal/shared"
)

// Handler exposes the audit client as a JSON API. Audit history is
// read-only; the only non-GET concern, scheduled export, lives in the
// worker.
type Handler struct {
	logger *slog.Logger
	client *Client
}

func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{logger: logger, client: client}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/export", h.export)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.client.List(r.Context(), filterFromRequest(r))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	data, err := h.client.Export(r.Context(), filterFromRequest(r))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-log.csv"`)
	_, _ = w.Write(data)
}

func filterFromRequest(r *http.Request) Filter {
	return Filter{
		Page:     httpx.QueryInt(r, "page", 1),
		PerPage:  httpx.QueryInt(r, "per_page", shared.DefaultPerPage),
		Search:   r.URL.Query().Get("search"),
		Actions:  httpx.QueryCSV(r, "action"),
		Entities: httpx.QueryCSV(r, "entity"),
		From:     httpx.QueryTime(r, "from"),
		To:       httpx.QueryTime(r, "to"),
		Sort:     r.URL.Query().Get("sort"),
		SortDesc: r.URL.Query().Get("order") == "desc",
	}
}
