package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/quake-risk-dashboard/internal/adapter/http"
	"github.com/couchcryptid/quake-risk-dashboard/internal/adapter/statfile"
	"github.com/couchcryptid/quake-risk-dashboard/internal/config"
	"github.com/couchcryptid/quake-risk-dashboard/internal/dashboard"
	"github.com/couchcryptid/quake-risk-dashboard/internal/observability"
	"github.com/couchcryptid/quake-risk-dashboard/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// No partial dashboard: a table that fails to load stops the process.
	ds, err := statfile.Load(cfg.DataPath)
	if err != nil {
		metrics.DatasetLoads.WithLabelValues("error").Inc()
		logger.Error("failed to load statistics table", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	logger.Info("statistics table loaded", "path", ds.Path(), "rows", ds.Len(), "islands", len(ds.Islands()))

	charts, err := render.NewCachedChartRenderer(render.PlotRenderer{}, cfg.ChartCacheSize, metrics)
	if err != nil {
		logger.Error("failed to create chart cache", "error", err)
		os.Exit(1)
	}
	maps := render.NewMapRenderer(render.TileLayer{
		URL:         cfg.TileURL,
		Attribution: cfg.TileAttribution,
		Subdomains:  cfg.TileSubdomains,
	}, logger, metrics)

	svc := dashboard.New(ds, statfile.Load, charts, maps, cfg.PageAuthor, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// SIGHUP re-reads the table in place.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	defer signal.Stop(reload)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-reload:
				_ = svc.Reload(ctx) // logged by the service
			}
		}
	}()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
