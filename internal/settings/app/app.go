package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "github.com/aussiebroadwan/partsdash/internal/settings/http"
	"github.com/aussiebroadwan/partsdash/internal/settings/metrics"
	"github.com/aussiebroadwan/partsdash/internal/settings/service"
	"github.com/aussiebroadwan/partsdash/internal/settings/store"
	"github.com/aussiebroadwan/partsdash/internal/settings/store/drivers/sqlite"
	"github.com/aussiebroadwan/partsdash/pkg/jwtx"
	"github.com/aussiebroadwan/partsdash/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the settings service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	verifier jwtx.Verifier
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	settingsService *service.SettingsService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "settings-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	verifier, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.verifier = verifier

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMetrics()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the root handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("settings service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down settings service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("settings service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initMetrics uses a private registry so tests can build several
// applications in one process.
func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)
}

func (app *Application) initServices() {
	app.settingsService = &service.SettingsService{
		Store:   app.db,
		Metrics: app.metrics,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.registry,
		app.logger,
	)

	router.Settings = app.settingsService
	router.Metrics = app.metrics
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              net.JoinHostPort("", fmt.Sprint(app.cfg.Port)),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
