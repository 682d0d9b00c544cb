package settings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-console/meridian-console/internal/platform/httpx"
	"github.com/meridian-console/meridian-console/internal/shared"
)

// Handler exposes the settings client as a JSON API.
type Handler struct {
	logger *slog.Logger
	client *Client
}

func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{logger: logger, client: client}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		Page:       httpx.QueryInt(r, "page", 1),
		PerPage:    httpx.QueryInt(r, "per_page", shared.DefaultPerPage),
		Search:     r.URL.Query().Get("search"),
		Categories: httpx.QueryCSV(r, "category"),
		Sort:       r.URL.Query().Get("sort"),
		SortDesc:   r.URL.Query().Get("order") == "desc",
	}
	page, err := h.client.List(r.Context(), f)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, setting)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if !httpx.ValidateStruct(w, req) {
		return
	}
	setting, err := h.client.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, setting)
}
