package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/biztime/biztime/internal/app"
	"github.com/biztime/biztime/internal/companies"
	"github.com/biztime/biztime/internal/industries"
	"github.com/biztime/biztime/internal/invoices"
	"github.com/biztime/biztime/internal/observability"
	"github.com/biztime/biztime/internal/platform/db"
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

	pool, err := db.Connect(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	companiesHandler := companies.NewHandler(logger, companies.NewService(companies.NewRepository(pool)))
	industriesHandler := industries.NewHandler(logger, industries.NewService(industries.NewRepository(pool)))
	invoicesHandler := invoices.NewHandler(logger, invoices.NewService(invoices.NewRepository(pool)))

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		CompaniesHandler:  companiesHandler,
		IndustriesHandler: industriesHandler,
		InvoicesHandler:   invoicesHandler,
		Metrics:           metrics,
	})

	if err := app.Serve(ctx, cfg, router, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
