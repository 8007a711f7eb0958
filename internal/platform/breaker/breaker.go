// Package breaker guards calls to backing stores (Postgres, Redis, Kafka)
// with a circuit breaker, an OpenTelemetry client span, and store metrics.
//
// Construction:
//
//	b := breaker.New("postgres", cfg.Database.CircuitBreaker, metrics, logger)
//
// Executing an operation:
//
//	err := b.Execute(ctx, "commit", func(ctx context.Context) error {
//		return tx.Commit(ctx)
//	})
//
// While the breaker is open, Execute fails fast with an error wrapping
// domain.ErrUnavailable without calling fn.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/config"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/telemetry"
)

// Breaker wraps a gobreaker.CircuitBreaker for one named store.
type Breaker struct {
	name    string
	cb      *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Breaker for the store identified by name. If metrics is nil,
// metric recording is skipped. A nil logger discards state change logs.
func New(name string, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Breaker {
	logger = logging.OrDiscard(logger)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{
		name:    name,
		cb:      cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute runs fn through the circuit breaker inside a client span named
// after the store and operation.
func (b *Breaker) Execute(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := b.cb.Execute(func() (struct{}, error) {
		spanCtx, span := b.startSpan(ctx, operation)
		defer span.End()

		fnErr := fn(spanCtx)
		if fnErr != nil && !isSuccessful(fnErr) {
			span.RecordError(fnErr)
			span.SetStatus(codes.Error, fnErr.Error())
		}
		return struct{}{}, fnErr
	})

	b.recordMetrics(ctx, operation, start, err)

	if isRejected(err) {
		return fmt.Errorf("%s %s: %w: %w", b.name, operation, domain.ErrUnavailable, err)
	}
	return err
}

// Name returns the store identifier (e.g., "postgres").
func (b *Breaker) Name() string {
	return b.name
}

// HealthCheck reports the store's availability from the breaker state
// without making a network call.
func (b *Breaker) HealthCheck(_ context.Context) error {
	state := b.cb.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", b.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", b.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", b.name, state)
	}
}

func (b *Breaker) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("breaker")

	return tracer.Start(ctx, b.name+" "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("peer.service", b.name),
			attribute.String("store.operation", operation),
		),
	)
}

// recordMetrics is called outside the breaker so rejections are counted.
func (b *Breaker) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if b.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isRejected(err):
		result = "circuit_open"
	case err != nil && !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrPeerService.String(b.name),
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	b.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	b.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// isSuccessful reports whether err leaves the store healthy. Domain outcomes
// and caller cancellation do not count against the breaker.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled)
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 clamps v to the uint32 range. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
