package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-console/meridian-console/internal/platform/httpx"
	"github.com/meridian-console/meridian-console/internal/shared"
)

// Handler exposes the company client as a JSON API.
type Handler struct {
	logger *slog.Logger
	client *Client
}

func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{logger: logger, client: client}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/bulk", h.bulk)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		Page:        httpx.QueryInt(r, "page", 1),
		PerPage:     httpx.QueryInt(r, "per_page", shared.DefaultPerPage),
		Search:      r.URL.Query().Get("search"),
		Plans:       httpx.QueryCSV(r, "plan"),
		IsActive:    httpx.QueryBool(r, "is_active"),
		EmployeeMin: httpx.QueryFloat(r, "employees_min"),
		EmployeeMax: httpx.QueryFloat(r, "employees_max"),
		CreatedFrom: httpx.QueryTime(r, "created_from"),
		CreatedTo:   httpx.QueryTime(r, "created_to"),
		Sort:        r.URL.Query().Get("sort"),
		SortDesc:    r.URL.Query().Get("order") == "desc",
	}
	page, err := h.client.List(r.Context(), f)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	company, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, company)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if !httpx.ValidateStruct(w, req) {
		return
	}
	company, err := h.client.Create(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, company)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if !httpx.ValidateStruct(w, req) {
		return
	}
	company, err := h.client.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, company)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.client.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) bulk(w http.ResponseWriter, r *http.Request) {
	var req shared.BulkRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	out, err := h.client.Bulk(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}
