// Package main is the entry point for the todo web application. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todo-web/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/view"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/store/guard"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/go-todo-web/internal/app"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 10 * time.Second
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

	// Bootstrap: config, logger, telemetry, store.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening store: %w", err)
	}
	logger.Info("todo store ready", slog.String("driver", cfg.Store.Driver))

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = store.Close()
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if checker, ok := store.inner.(ports.HealthChecker); ok {
		registry.Register(checker)
	}
	registry.Register(do.MustInvoke[*guard.Store](injector))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = store.Close()
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := store.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// storeHandle is the backing todo store selected by configuration.
type storeHandle struct {
	inner ports.TodoStore
}

// Close releases the store if it holds resources.
func (h *storeHandle) Close() error {
	if c, ok := h.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (*storeHandle, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return &storeHandle{inner: memory.New()}, nil
	case config.StoreDriverSQLite:
		openCtx, cancel := context.WithTimeout(ctx, storeOpenTimeout)
		defer cancel()

		st, err := sqlite.Open(openCtx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		return &storeHandle{inner: st}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*guard.Store, error) {
		store := do.MustInvoke[*storeHandle](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return guard.New(store.inner, cfg.Store.Driver, &cfg.Store.CircuitBreaker, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[*guard.Store](i)
		reg := do.MustInvoke[*prometheus.Registry](i)
		return app.NewTodoService(store, app.NewMetrics(reg), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*view.Renderer, error) {
		return view.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoPageHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		renderer := do.MustInvoke[*view.Renderer](i)
		return handlers.NewTodoPageHandler(svc, renderer), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pageH := do.MustInvoke[*handlers.TodoPageHandler](i)
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		endpoint := adapthttp.MetricsEndpoint{Path: cfg.Metrics.Path}
		if cfg.Metrics.Enabled {
			reg := do.MustInvoke[*prometheus.Registry](i)
			endpoint.Handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		}

		return adapthttp.NewRouter(pageH, todoH, healthH, endpoint,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.SecurityHeaders(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout, logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
