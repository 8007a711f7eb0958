// Package main runs the devflix category admin API. It loads the profile's
// configuration, wires the object graph with samber/do, serves HTTP until
// SIGINT or SIGTERM and then drains requests before releasing the storage,
// cache, event and telemetry resources.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/devflix-admin/internal/adapters/http"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/closer"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/config"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	closeTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("redis", cfg.Redis.Enabled),
		slog.Bool("kafka", cfg.Kafka.Enabled),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Released last-in first-out once the server has drained: Kafka writer,
	// Redis client and Postgres pool, then the telemetry providers.
	closers := closer.New()
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := closers.Close(closeCtx); err != nil {
			logger.Error("closing resources", slog.Any("error", err))
		}
	}()

	metrics, err := initTelemetry(ctx, cfg, closers)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	do.ProvideValue(injector, closers)

	registerDependencies(ctx, injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	registerHealthChecks(injector, cfg)

	if err := serve(ctx, server, logger); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// serve runs server until ctx is canceled or the listener fails, then
// drains in-flight requests for up to drainTimeout.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("draining", slog.String("cause", context.Cause(gctx).Error()))

		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), drainTimeout)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("draining server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// initTelemetry installs the tracer and meter providers and registers their
// shutdown with closers. With telemetry disabled it returns nil metrics and
// middleware falls back to tracing through the no-op global provider.
func initTelemetry(ctx context.Context, cfg *config.Config, closers *closer.Closer) (*telemetry.Metrics, error) {
	if !cfg.Telemetry.Enabled {
		return nil, nil
	}

	tc := cfg.Telemetry
	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	closers.Add("tracer provider", tp.Shutdown)

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init meter: %w", err)
	}
	closers.Add("meter provider", mp.Shutdown)

	metrics, err := telemetry.NewMetrics(mp, tc.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return metrics, nil
}
