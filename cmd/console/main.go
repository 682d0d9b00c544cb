package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meridian-console/meridian-console/internal/app"
	"github.com/meridian-console/meridian-console/internal/audit"
	"github.com/meridian-console/meridian-console/internal/companies"
	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/cache"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/internal/procurement"
	"github.com/meridian-console/meridian-console/internal/products"
	"github.com/meridian-console/meridian-console/internal/settings"
	"github.com/meridian-console/meridian-console/internal/tickets"
	"github.com/meridian-console/meridian-console/internal/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var responseCache *cache.ResponseCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, list caching disabled", slog.Any("error", err))
		} else {
			defer func() { _ = redisClient.Close() }()
			responseCache = cache.NewResponseCache(redisClient, cfg.CacheTTL)
		}
	}

	tc, err := transport.New(transport.Config{
		BaseURL: cfg.BackendBaseURL,
		Token:   cfg.BackendToken,
		Timeout: cfg.BackendTimeout,
		Logger:  logger,
		Cache:   responseCache,
	})
	if err != nil {
		logger.Error("build transport", slog.Any("error", err))
		os.Exit(1)
	}

	policy := fallback.NewPolicy(logger)
	latency := cfg.StoreLatency

	usersClient := users.NewClient(policy, tc, users.NewStore(latency))
	companiesClient := companies.NewClient(policy, tc, companies.NewStore(latency))
	productsClient := products.NewClient(policy, tc, products.NewStore(latency))
	procurementClient := procurement.NewClient(policy, tc, procurement.NewStore(latency))
	ticketsClient := tickets.NewClient(policy, tc, tickets.NewStore(latency))
	auditClient := audit.NewClient(policy, tc, audit.NewStore(latency))
	settingsClient := settings.NewClient(policy, tc, settings.NewStore(latency))

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		UsersHandler:       users.NewHandler(logger, usersClient),
		CompaniesHandler:   companies.NewHandler(logger, companiesClient),
		ProductsHandler:    products.NewHandler(logger, productsClient),
		ProcurementHandler: procurement.NewHandler(logger, procurementClient),
		TicketsHandler:     tickets.NewHandler(logger, ticketsClient),
		AuditHandler:       audit.NewHandler(logger, auditClient),
		SettingsHandler:    settings.NewHandler(logger, settingsClient),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
