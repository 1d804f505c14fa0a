package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"numerology/internal/interpretation"
	"numerology/internal/platform/config"
	"numerology/internal/platform/httpserver"
	"numerology/internal/platform/logger"
	"numerology/internal/platform/metrics"
	"numerology/internal/reading"
	readingHandler "numerology/internal/reading/handler"
	readingMetrics "numerology/internal/reading/metrics"
	httptransport "numerology/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	catalog, err := loadCatalog(cfg.MeaningsFile)
	if err != nil {
		return err
	}
	log.Info("interpretation catalog loaded", "entries", catalog.Len(), "overrides", cfg.MeaningsFile)

	var httpMetrics *metrics.Metrics
	opts := []reading.Option{reading.WithLogger(log)}
	if cfg.MetricsEnabled {
		httpMetrics = metrics.New()
		opts = append(opts, reading.WithMetrics(readingMetrics.New(httpMetrics.Registry())))
	}

	service := reading.New(catalog, opts...)
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        httpMetrics,
		RequestTimeout: cfg.RequestTimeout,
		Modules:        []httptransport.Module{readingHandler.New(service, log)},
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting numerology server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down numerology server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func loadCatalog(path string) (*interpretation.Catalog, error) {
	if path == "" {
		return interpretation.Default(), nil
	}
	return interpretation.LoadFile(path)
}
