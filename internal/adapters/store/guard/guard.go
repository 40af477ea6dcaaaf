// Package guard wraps a [ports.TodoStore] with a circuit breaker,
// OpenTelemetry spans and store operation metrics.
//
// Each call runs in this order:
//
//	Circuit Breaker → Span → inner store
//
// Domain outcomes (not found, validation) and caller cancellation count as
// successes for the breaker; only infrastructure failures trip it. While the
// breaker is open every call fails fast with an error wrapping
// [domain.ErrUnavailable].
//
// Construction:
//
//	guarded := guard.New(inner, "sqlite", &cfg.Store.CircuitBreaker, metrics, logger)
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	healthName = "todo-store"
	tracerName = "github.com/jsamuelsen11/go-todo-web/internal/adapters/store/guard"
)

// Store decorates another TodoStore.
type Store struct {
	next    ports.TodoStore
	driver  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next. The driver name labels spans and metrics. If metrics is
// nil, metric recording is skipped; if logger is nil, logs are discarded.
func New(next ports.TodoStore, driver string, cfg *config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        healthName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("store", driver),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		next:    next,
		driver:  driver,
		breaker: cb,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
		metrics: metrics,
		logger:  logger,
	}
}

// List delegates to the wrapped store.
func (s *Store) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	return call(ctx, s, "list", func(ctx context.Context) ([]todo.Todo, error) {
		return s.next.List(ctx, filter)
	})
}

// Get delegates to the wrapped store.
func (s *Store) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	return call(ctx, s, "get", func(ctx context.Context) (*todo.Todo, error) {
		return s.next.Get(ctx, id)
	})
}

// Create delegates to the wrapped store.
func (s *Store) Create(ctx context.Context, td *todo.Todo) (*todo.Todo, error) {
	return call(ctx, s, "create", func(ctx context.Context) (*todo.Todo, error) {
		return s.next.Create(ctx, td)
	})
}

// Update delegates to the wrapped store.
func (s *Store) Update(ctx context.Context, id int64, mutate func(*todo.Todo) error) (*todo.Todo, error) {
	return call(ctx, s, "update", func(ctx context.Context) (*todo.Todo, error) {
		return s.next.Update(ctx, id, mutate)
	})
}

// Delete delegates to the wrapped store.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	return call(ctx, s, "delete", func(ctx context.Context) (bool, error) {
		return s.next.Delete(ctx, id)
	})
}

// DeleteCompleted delegates to the wrapped store.
func (s *Store) DeleteCompleted(ctx context.Context) (int, error) {
	return call(ctx, s, "delete_completed", s.next.DeleteCompleted)
}

// Stats delegates to the wrapped store.
func (s *Store) Stats(ctx context.Context) (todo.Stats, error) {
	return call(ctx, s, "stats", s.next.Stats)
}

// Name returns the identifier used when registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return healthName
}

// HealthCheck reports store availability from the circuit breaker state.
// No store call is made.
//
// State mapping:
//   - "closed"    -- store is operating normally; returns nil.
//   - "half-open" -- breaker is probing recovery; returns a degraded error.
//   - "open"      -- store calls are being rejected; returns a failing error.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", healthName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", healthName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", healthName, state)
	}
}

// call runs fn through the breaker inside a span and records metrics.
// Metrics are recorded outside the breaker so rejections are captured.
func call[T any](ctx context.Context, s *Store, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	var out T
	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := s.tracer.Start(ctx, "todo.store."+op,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				telemetry.AttrStoreDriver.String(s.driver),
				telemetry.AttrStoreOperation.String(op),
			),
		)
		defer span.End()

		var err error
		out, err = fn(spanCtx)
		finishSpan(span, err)
		return struct{}{}, err
	})

	if isRejected(err) {
		s.logger.WarnContext(ctx, "store call rejected by circuit breaker",
			slog.String("operation", op),
			slog.String("store", s.driver),
		)
		err = fmt.Errorf("todo store %s: %w: %w", op, domain.ErrUnavailable, err)
	}

	s.recordMetrics(ctx, op, start, err)

	return out, err
}

// finishSpan marks the span as failed only for infrastructure errors.
func finishSpan(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	if !isDomainError(err) {
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records store operation duration and count. Safe to call
// with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreDriver.String(s.driver),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result(err)),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// result classifies err for the "result" metric attribute.
func result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUnavailable):
		return "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}

// isSuccessful decides which errors count against the breaker.
func isSuccessful(err error) bool {
	return err == nil ||
		isDomainError(err) ||
		errors.Is(err, context.Canceled)
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict)
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
