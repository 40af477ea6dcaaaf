package ports

import "context"

// HealthChecker reports whether one dependency of the todo service can serve
// requests. The SQLite store pings its database; the guarded store reports
// its circuit breaker state.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "sqlite".
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns each result under its Name;
	// a nil error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
