package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/pollschema/bridge/schemabridge"
	"github.com/jrazmi/pollschema/bridge/scaffolding/metrics"
	"github.com/jrazmi/pollschema/bridge/scaffolding/mid"
	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/infrastructure/web"
	"github.com/jrazmi/pollschema/sdk/environment"
	"github.com/jrazmi/pollschema/sdk/logger"
	"github.com/jrazmi/pollschema/sdk/telemetry"
)

var build = "develop"
var appName = "SCHEMASVC"

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv(appName, logger.WithTraceID(telemetry.TraceID))
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	registry := schemas.Default()
	log.InfoContext(ctx, "startup", "status", "registry loaded", "models", len(registry.Models()))

	m := metrics.New("pollschema")

	server, err := web.NewServerFromEnv(appName, web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)))
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	handler, err := webHandler(log, registry, m, server.Config.EnableDebug)
	if err != nil {
		return err
	}
	server.Handler = handler

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
	if err := server.Run(ctx); err != nil {
		return err
	}
	log.InfoContext(ctx, "shutdown", "status", "shutdown complete")
	return nil
}

func webHandler(log *logger.Logger, registry *schemas.Registry, m *metrics.Metrics, debug bool) (http.Handler, error) {
	// INITIALIZATION
	wh, opts, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(log),
		web.WithTelemetry(telemetry.NewTelemetry()),
	)
	if err != nil {
		return nil, fmt.Errorf("webhandler: %w", err)
	}

	// GLOBAL MIDDLEWARE
	wh.Use(
		mid.CORS(opts.CORSOrigins...), // Configured origins, "*" by default
		mid.Logger(log),               // Request logging
		mid.Errors(log),               // Error handling
		mid.Metrics(m),                // Metrics collection
		mid.Panics(),                  // Panic recovery
	)

	// API
	schemabridge.AddHttpRoutes(wh.Group("/api/v1"), schemabridge.Config{
		Log:      log,
		Registry: registry,
	})

	// OPERATIONS
	wh.HandleRaw("GET /metrics", m.Handler())
	if debug {
		wh.HandleRaw("GET /debug/pprof/", http.HandlerFunc(pprof.Index))
		wh.HandleRaw("GET /debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
		wh.HandleRaw("GET /debug/pprof/profile", http.HandlerFunc(pprof.Profile))
		wh.HandleRaw("GET /debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
		wh.HandleRaw("GET /debug/pprof/trace", http.HandlerFunc(pprof.Trace))
	}

	return wh, nil
}
