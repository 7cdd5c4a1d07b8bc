package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres"
	attendeerepo "github.com/tillyhacks/registration-backend/internal/adapter/postgres/attendee"
	credentialrepo "github.com/tillyhacks/registration-backend/internal/adapter/postgres/credential"
	parentrepo "github.com/tillyhacks/registration-backend/internal/adapter/postgres/parent"
	profilerepo "github.com/tillyhacks/registration-backend/internal/adapter/postgres/profile"
	waiverrepo "github.com/tillyhacks/registration-backend/internal/adapter/postgres/waiver"
	"github.com/tillyhacks/registration-backend/internal/adapter/provider/github"
	"github.com/tillyhacks/registration-backend/internal/auth"
	"github.com/tillyhacks/registration-backend/internal/config"
	"github.com/tillyhacks/registration-backend/internal/notify"
	adminsvc "github.com/tillyhacks/registration-backend/internal/service/admin"
	authsvc "github.com/tillyhacks/registration-backend/internal/service/auth"
	regsvc "github.com/tillyhacks/registration-backend/internal/service/registration"
	"github.com/tillyhacks/registration-backend/internal/transport/middleware"
	"github.com/tillyhacks/registration-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services and services into the HTTP
// transport, then serves until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	profiles := profilerepo.New(pool)
	credentials := credentialrepo.New(pool)
	attendees := attendeerepo.New(pool)
	parents := parentrepo.New(pool)
	waivers := waiverrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	if cfg.Auth.GitHubClientID == "" {
		logger.Warn("github oauth credentials are not configured, oauth login will fail")
	}
	verifier := github.NewVerifier(
		cfg.Auth.GitHubClientID,
		cfg.Auth.GitHubClientSecret,
		cfg.Auth.GitHubRedirectURI,
		logger,
	)

	emitter := notify.NewEmitter(cfg.Notify, logger)

	authService := authsvc.NewService(logger, profiles, credentials, tx, verifier, jwtManager, emitter, cfg.Auth)
	registrationService := regsvc.NewService(logger, profiles, attendees, parents, waivers, emitter)
	adminService := adminsvc.NewService(logger, attendees, parents, waivers, cfg.Admin)

	authHandler := rest.NewAuthHandler(authService, logger)
	formsHandler := rest.NewFormsHandler(registrationService, cfg.Forms, logger)
	adminHandler := rest.NewAdminHandler(adminService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	rateLimiter := middleware.NewRateLimiter(10 * time.Minute)
	defer rateLimiter.Stop()

	mw := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Auth(jwtManager),
		middleware.AdminGate(adminService),
	)

	router := rest.NewRouter(authHandler, formsHandler, adminHandler, healthHandler, mw,
		rateLimiter.Limit(cfg.Server.LoginRateLimit))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
