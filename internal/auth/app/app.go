package app

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

	httpapi "github.com/aussiebroadwan/userauth/internal/auth/http"
	"github.com/aussiebroadwan/userauth/internal/auth/service"
	"github.com/aussiebroadwan/userauth/internal/auth/store"
	"github.com/aussiebroadwan/userauth/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/userauth/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/userauth/pkg/cryptox"
	"github.com/aussiebroadwan/userauth/pkg/sessionx"
	"github.com/aussiebroadwan/userauth/pkg/slogx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/userauth/internal/auth/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	cipher   *cryptox.FieldCipher
	sessions *sessionx.Manager

	// Services
	directory        *service.DirectoryService
	authenticator    *service.Authenticator
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initCrypto(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	if err := app.bootstrap(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

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

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case "postgres":
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseDSN)
	default:
		db, err = sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initCrypto prepares the email cipher and the session cookie codec
func (app *Application) initCrypto() error {
	material, ephemeral, err := cryptox.LoadFieldKey(app.cfg.EmailKeyFile, app.cfg.EmailKey)
	if err != nil {
		return fmt.Errorf("failed to load email key: %w", err)
	}
	if ephemeral {
		app.logger.Warn("no email key configured, stored emails will be unreadable after restart")
	}
	if app.cipher, err = cryptox.NewFieldCipher(material); err != nil {
		return err
	}

	secret := app.cfg.SessionSecret
	if secret == "" {
		if secret, err = cryptox.GenerateToken(cryptox.TokenSize512); err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		app.logger.Warn("no session secret configured, sessions end on restart")
	}

	app.sessions, err = sessionx.New(sessionx.Config{
		CookieName: app.cfg.SessionName,
		Secret:     secret,
		MaxAge:     app.cfg.SessionMaxAge,
		Secure:     app.cfg.Env != "dev",
	})
	return err
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.directory = &service.DirectoryService{
		Store:  app.db,
		Cipher: app.cipher,
		Now:    time.Now,
	}
	app.authenticator = &service.Authenticator{Users: app.directory}
	app.bootstrapService = &service.BootstrapService{Directory: app.directory}
}

// bootstrap registers the configured administrator
func (app *Application) bootstrap(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)

	generated, err := app.bootstrapService.EnsureAdmin(ctx, service.AdminSeed{
		UserID:   app.cfg.AdminUserID,
		Password: app.cfg.AdminPassword,
		UserName: app.cfg.AdminName,
		Email:    app.cfg.AdminEmail,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	if generated != "" {
		// Never logged.
		fmt.Fprintf(os.Stderr, "generated password for admin user %q: %s\n", app.cfg.AdminUserID, generated)
	}

	if n, err := app.directory.CountUsers(ctx); err == nil {
		app.logger.Info("user directory ready", "users", n)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	policy, err := LoadPolicy(app.cfg.AccessPolicyFile)
	if err != nil {
		return err
	}
	if app.cfg.AccessPolicyFile != "" {
		app.logger.Info("access policy loaded", "file", app.cfg.AccessPolicyFile, "rules", len(policy.Rules))
	}

	router := httpapi.NewRouter(BuildVersion, app.db, app.sessions, policy, app.logger)
	router.Authenticator = app.authenticator
	router.Directory = app.directory
	router.Users = app.directory
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
