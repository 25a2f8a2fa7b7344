package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/aussiebroadwan/campusdir/internal/directory/service"
	"github.com/aussiebroadwan/campusdir/internal/directory/store"
	"github.com/aussiebroadwan/campusdir/internal/directory/store/drivers/sqlite"
	"github.com/aussiebroadwan/campusdir/pkg/cryptox"
	"github.com/aussiebroadwan/campusdir/pkg/ratex"
	"github.com/aussiebroadwan/campusdir/pkg/slogx"
)

// BuildVersion is stamped at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the directory core together: storage, seeding, the
// session/profile/event services and the session sweeper. The presentation
// layer consumes it through the exported service accessors.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	sessionService      *service.SessionService
	profileService      *service.ProfileService
	eventService        *service.EventService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "directory",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if !cfg.SkipSeed {
		ctx := slogx.WithContext(context.Background(), app.logger)
		if err := app.bootstrapService.EnsureSeeded(ctx, domain.DefaultSeedData()); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return app, nil
}

// Run starts the background housekeeping worker and blocks until shutdown
// is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("directory core started",
		"database", app.cfg.DatabaseFile,
		"version", BuildVersion,
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	sig := <-shutdown
	app.logger.Info("shutdown signal received", "signal", sig)

	return app.Shutdown()
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down directory core...")

	done := make(chan struct{})
	go func() {
		app.housekeepingService.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(app.cfg.ShutdownGracePeriod):
		app.logger.Error("housekeeping worker did not stop in time")
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("directory core stopped")
	return nil
}

// Sessions returns the session manager.
func (app *Application) Sessions() *service.SessionService { return app.sessionService }

// Profiles returns the student/alumni directory service.
func (app *Application) Profiles() *service.ProfileService { return app.profileService }

// Events returns the announcement service.
func (app *Application) Events() *service.EventService { return app.eventService }

// Bootstrap returns the demo-data seeder.
func (app *Application) Bootstrap() *service.BootstrapService { return app.bootstrapService }

// Store exposes the underlying store, mainly for tests and tooling.
func (app *Application) Store() store.Store { return app.db }

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:        app.db,
		TTL:          app.cfg.SessionTTL,
		LoginLimiter: ratex.NewLimiter(ratex.StrictLimit),
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.eventService = &service.EventService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db}
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}
