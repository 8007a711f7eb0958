package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/cache"
	"github.com/jsamuelsen11/devflix-admin/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/devflix-admin/internal/adapters/http"
	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/devflix-admin/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/devflix-admin/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/devflix-admin/internal/app"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/breaker"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/closer"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/config"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/health"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

// storage is the repository/unit-of-work pair for the configured driver,
// plus whatever readiness checks that driver contributes.
type storage struct {
	repo   ports.CategoryRepository
	uow    ports.UnitOfWork
	checks []ports.HealthChecker
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerStorage(ctx, injector, cfg, logger)
	registerOutbound(ctx, injector, cfg, logger)

	do.Provide(injector, func(i do.Injector) (app.Deps, error) {
		st := do.MustInvoke[*storage](i)
		return app.Deps{
			Repo:    st.repo,
			UoW:     st.uow,
			Cache:   do.MustInvoke[ports.CategoryCache](i),
			Events:  do.MustInvoke[ports.EventPublisher](i),
			Metrics: do.MustInvoke[*telemetry.Metrics](i),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CreateCategoryHandler, error) {
		return app.NewCreateCategoryHandler(do.MustInvoke[app.Deps](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CategoryService, error) {
		return app.NewCategoryService(do.MustInvoke[app.Deps](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CategoryHandler, error) {
		return handlers.NewCategoryHandler(
			do.MustInvoke[ports.CreateCategoryHandler](i),
			do.MustInvoke[ports.CategoryService](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		categoryH := do.MustInvoke[*handlers.CategoryHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(categoryH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerStorage provides the storage pair selected by storage.driver.
func registerStorage(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storage, error) {
		if cfg.Storage.Driver != config.DriverPostgres {
			store := memory.NewStore()
			return &storage{
				repo:   memory.NewRepository(store),
				uow:    memory.UnitOfWork{},
				checks: []ports.HealthChecker{store},
			}, nil
		}

		pool, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		do.MustInvoke[*closer.Closer](i).Add("postgres", func(context.Context) error {
			pool.Close()
			return nil
		})

		if cfg.Database.Migrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				return nil, fmt.Errorf("migrating database: %w", err)
			}
		}

		b := breaker.New("store", cfg.Database.CircuitBreaker, do.MustInvoke[*telemetry.Metrics](i), logger)
		return &storage{
			repo:   postgres.NewRepository(pool, b),
			uow:    postgres.NewUnitOfWork(pool, b),
			checks: []ports.HealthChecker{postgres.NewPoolHealth(pool), b},
		}, nil
	})
}

// registerOutbound provides the category cache and event publisher. Both
// degrade to no-op implementations when their backing service is disabled.
func registerOutbound(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*cache.Redis, error) {
		client, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		do.MustInvoke[*closer.Closer](i).AddErr("redis", client.Close)

		b := breaker.New("cache", cfg.Database.CircuitBreaker, do.MustInvoke[*telemetry.Metrics](i), logger)
		return cache.NewRedis(client, cfg.Redis.TTL, b, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CategoryCache, error) {
		if !cfg.Redis.Enabled {
			return cache.Noop{}, nil
		}
		return do.Invoke[*cache.Redis](i)
	})

	do.Provide(injector, func(i do.Injector) (*events.Kafka, error) {
		b := breaker.New("kafka", cfg.Database.CircuitBreaker, do.MustInvoke[*telemetry.Metrics](i), logger)
		k := events.NewKafka(cfg.Kafka, b, logger)
		do.MustInvoke[*closer.Closer](i).AddErr("kafka", k.Close)
		return k, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		if !cfg.Kafka.Enabled {
			return events.NewDiscard(logger), nil
		}
		return do.Invoke[*events.Kafka](i)
	})
}

// registerHealthChecks adds every backing service of the wired graph to the
// readiness registry.
func registerHealthChecks(injector *do.RootScope, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	for _, check := range do.MustInvoke[*storage](injector).checks {
		registry.Register(check)
	}
	if cfg.Redis.Enabled {
		registry.Register(do.MustInvoke[*cache.Redis](injector))
	}
	if cfg.Kafka.Enabled {
		registry.Register(do.MustInvoke[*events.Kafka](injector))
	}
}
