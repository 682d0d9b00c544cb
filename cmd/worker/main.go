package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/meridian-console/meridian-console/internal/app"
	"github.com/meridian-console/meridian-console/internal/audit"
	"github.com/meridian-console/meridian-console/internal/fallback"
	"github.com/meridian-console/meridian-console/internal/platform/transport"
	"github.com/meridian-console/meridian-console/jobs"
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

	tc, err := transport.New(transport.Config{
		BaseURL: cfg.BackendBaseURL,
		Token:   cfg.BackendToken,
		Timeout: cfg.BackendTimeout,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("build transport", slog.Any("error", err))
		os.Exit(1)
	}

	policy := fallback.NewPolicy(logger)
	auditClient := audit.NewClient(policy, tc, audit.NewStore(cfg.StoreLatency))
	exporter := jobs.NewExporter(auditClient, cfg.ExportDir, logger)

	worker := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Exporter:  exporter,
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down worker")
		worker.Shutdown()
	}()

	logger.Info("starting worker", slog.String("redis", cfg.RedisAddr))
	if err := worker.Run(); err != nil {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
