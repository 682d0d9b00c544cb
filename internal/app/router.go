package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-console/meridian-console/internal/audit"
	"github.com/meridian-console/meridian-console/internal/companies"
	"github.com/meridian-console/meridian-console/internal/platform/httpx"
	"github.com/meridian-console/meridian-console/internal/procurement"
	"github.com/meridian-console/meridian-console/internal/products"
	"github.com/meridian-console/meridian-console/internal/settings"
	"github.com/meridian-console/meridian-console/internal/tickets"
	"github.com/meridian-console/meridian-console/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	UsersHandler       *users.Handler
	CompaniesHandler   *companies.Handler
	ProductsHandler    *products.Handler
	ProcurementHandler *procurement.Handler
	TicketsHandler     *tickets.Handler
	AuditHandler       *audit.Handler
	SettingsHandler    *settings.Handler
}

// NewRouter constructs the chi.Router with gateway defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Route("/users", params.UsersHandler.MountRoutes)
		r.Route("/companies", params.CompaniesHandler.MountRoutes)
		r.Route("/products", params.ProductsHandler.MountRoutes)
		r.Route("/purchase-orders", params.ProcurementHandler.MountRoutes)
		r.Route("/tickets", params.TicketsHandler.MountRoutes)
		r.Route("/audit-logs", params.AuditHandler.MountRoutes)
		r.Route("/settings", params.SettingsHandler.MountRoutes)
	})

	return r
}
