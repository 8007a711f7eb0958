package ports

import "context"

// HealthChecker is implemented by every backing service the readiness probe
// depends on: the Postgres pool, the Redis cache, the storage circuit breaker.
type HealthChecker interface {
	// Name identifies the component in readiness output ("postgres", "redis").
	Name() string

	// HealthCheck returns nil when the component is usable. It must honor
	// ctx deadlines; the readiness handler bounds every probe.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered checker and returns the results keyed by
	// name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
