package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/ontomap/config"
	"github.com/c360studio/ontomap/pipeline"
)

// App wires together the configured pipeline, the optional NATS connection,
// and the optional metrics listener.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *pipeline.Metrics

	natsConn      *nats.Conn
	metricsServer *http.Server
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		metrics: pipeline.NewMetrics(),
	}
}

// Start connects optional components. A missing NATS URL or metrics address
// disables the component rather than failing.
func (a *App) Start() error {
	if a.cfg.NATS.URL != "" {
		a.logger.Info("connecting to NATS", "url", a.cfg.NATS.URL)
		conn, err := nats.Connect(a.cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		a.natsConn = conn
	}

	if a.cfg.Metrics.ListenAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", a.metrics.Handler())
		a.metricsServer = &http.Server{
			Addr:    a.cfg.Metrics.ListenAddr,
			Handler: mux,
		}
		go func() {
			a.logger.Info("metrics listener started", "addr", a.cfg.Metrics.ListenAddr)
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics listener failed", "error", err)
			}
		}()
	}

	return nil
}

// Run executes the mapping pipeline once, or repeatedly in watch mode.
func (a *App) Run(ctx context.Context, watch bool) error {
	p := pipeline.New(a.cfg, a.logger, a.metrics)
	if a.natsConn != nil {
		p.SetNATS(a.natsConn)
	}

	if _, err := p.Run(ctx); err != nil {
		if !watch {
			return err
		}
		// In watch mode a failed run is recoverable: the operator fixes the
		// input and the watcher re-runs.
		a.logger.Error("run failed", "error", err)
	}

	if !watch {
		return nil
	}

	paths := []string{a.cfg.Tissue.Ontology, a.cfg.CellType.Ontology}
	watcher := pipeline.NewWatcher(paths, a.cfg.Watch.DebounceDelay, a.logger, func(runCtx context.Context) {
		if _, err := p.Run(runCtx); err != nil {
			a.logger.Error("run failed", "error", err)
		}
	})
	return watcher.Watch(ctx)
}

// Stop shuts down optional components.
func (a *App) Stop() {
	if a.metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("metrics listener shutdown", "error", err)
		}
	}
	if a.natsConn != nil {
		a.natsConn.Close()
	}
}

func run(configPath, outputDir, logLevel string, watch bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(logLevel),
	}))
	slog.SetDefault(logger)

	loader := config.NewLoader(logger)
	cfg, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if watch {
		cfg.Watch.Enabled = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := NewApp(cfg, logger)
	if err := app.Start(); err != nil {
		return err
	}
	defer app.Stop()

	return app.Run(ctx, cfg.Watch.Enabled)
}
