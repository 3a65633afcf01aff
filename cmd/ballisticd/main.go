// Command ballisticd serves launches over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/api"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/config"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/observability"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, os.Stdout, logger)
	if err != nil {
		logger.Error(ctx, "cannot initialise tracing", logging.Err(err))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, logger)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		logger.Error(ctx, "cannot register metrics", logging.Err(err))
		os.Exit(1)
	}

	srv := api.NewServer(cfg, logger, collector)

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting server",
			logging.String("addr", cfg.HTTPAddr),
			logging.Int("max_samples", cfg.MaxSamples),
			logging.Any("tracing_enabled", cfg.Tracing.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error(ctx, "server listen error", logging.Err(err))
		stop()
		observability.ShutdownWithTimeout(context.Background(), shutdownTracing, logger)
		os.Exit(1)
	}
	logger.Info(context.Background(), "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server shutdown error", logging.Err(err))
	}

	logger.Info(shutdownCtx, "server stopped")
}
