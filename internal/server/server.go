// Package server wires the application together and manages the HTTP server
// lifecycle. Initialization runs in dependency order: database → auth →
// repositories → services → handlers → routes. Everything lives on the
// Server value; there is no package-level state, so two servers in one test
// binary never share anything.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/config"
	"github.com/homenest/HomeNest_Backend/internal/database"
	"github.com/homenest/HomeNest_Backend/internal/handlers"
	"github.com/homenest/HomeNest_Backend/internal/imageupload"
	"github.com/homenest/HomeNest_Backend/internal/repository"
	"github.com/homenest/HomeNest_Backend/internal/service"
	"github.com/homenest/HomeNest_Backend/migrations"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	AuthHandler     *handlers.AuthHandler
	UserHandler     *handlers.UserHandler
	HomeHandler     *handlers.HomeHandler
	ReviewHandler   *handlers.ReviewHandler
	FavoriteHandler *handlers.FavoriteHandler
	SystemHandler   *handlers.SystemHandler
}

// repositories groups the data access layer.
type repositories struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	homeRepo     repository.HomeRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
}

// services groups the business layer.
type services struct {
	authService     *service.AuthService
	userService     *service.UserService
	homeService     *service.HomeService
	reviewService   *service.ReviewService
	favoriteService *service.FavoriteService
}

// Server represents the HomeNest API server.
type Server struct {
	Config   *config.AppConfig
	Db       *database.Pool
	Handlers *Handlers

	router      chi.Router
	repos       *repositories
	services    *services
	sessions    *auth.SessionManager
	passwordCfg *auth.PasswordConfig
	uploader    imageupload.Uploader
	httpServer  *http.Server
	sweepCancel context.CancelFunc
}

// NewServer creates a fully wired server instance.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.setupAuth()
	s.setupRepositories()
	s.setupServices()
	s.setupHandlers()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupDatabase connects the pool and runs schema migrations.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// setupAuth initializes the password config and the image uploader. The
// session manager is created in setupServices once the session repository
// exists.
func (s *Server) setupAuth() {
	s.passwordCfg = auth.ConfigFromAppConfig(s.Config)
	s.uploader = imageupload.NewHTTPUploader(s.Config.ImageUpload)
}

// setupRepositories initializes the data access layer.
func (s *Server) setupRepositories() {
	s.repos = &repositories{
		userRepo:     repository.NewUserRepository(s.Db),
		sessionRepo:  repository.NewSessionRepository(s.Db),
		homeRepo:     repository.NewHomeRepository(s.Db),
		reviewRepo:   repository.NewReviewRepository(s.Db),
		favoriteRepo: repository.NewFavoriteRepository(s.Db),
	}
}

// setupServices initializes the business layer and the session manager.
func (s *Server) setupServices() {
	s.sessions = auth.NewSessionManager(
		s.repos.sessionRepo,
		s.Config.Session.TTL,
		s.Config.Session.CookieSecure,
	)

	s.services = &services{
		authService: service.NewAuthService(s.repos.userRepo, s.passwordCfg),
		userService: service.NewUserService(
			s.repos.userRepo,
			s.repos.reviewRepo,
			s.repos.favoriteRepo,
			s.passwordCfg,
		),
		homeService: service.NewHomeService(
			s.repos.homeRepo,
			s.repos.userRepo,
			s.repos.reviewRepo,
		),
		reviewService: service.NewReviewService(
			s.repos.reviewRepo,
			s.repos.homeRepo,
			s.repos.userRepo,
		),
		favoriteService: service.NewFavoriteService(
			s.repos.favoriteRepo,
			s.repos.userRepo,
			s.repos.homeRepo,
		),
	}
}

// setupHandlers initializes the HTTP layer.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		AuthHandler: handlers.NewAuthHandler(
			s.services.authService,
			s.services.userService,
			s.sessions,
			s.uploader,
		),
		UserHandler:     handlers.NewUserHandler(s.services.userService, s.uploader),
		HomeHandler:     handlers.NewHomeHandler(s.services.homeService),
		ReviewHandler:   handlers.NewReviewHandler(s.services.reviewService),
		FavoriteHandler: handlers.NewFavoriteHandler(s.services.favoriteService),
		SystemHandler:   handlers.NewSystemHandler(s.Db, s.Config),
	}
}

// startSessionSweeper runs the periodic expired-session cleanup until the
// server shuts down.
func (s *Server) startSessionSweeper() {
	interval := s.Config.Session.SweepInterval
	if interval <= 0 {
		interval = time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.sweepCancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.repos.sessionRepo.DeleteExpired(ctx); err != nil {
					log.Error().Err(err).Msg("Session sweep failed")
				}
			}
		}
	}()

	log.Info().Dur("interval", interval).Msg("Session sweeper started")
}

// Start runs the server until an interrupt or termination signal arrives,
// then shuts down gracefully within the configured timeout.
func (s *Server) Start() error {
	s.startSessionSweeper()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", s.httpServer.Addr).
			Str("environment", s.Config.App.Environment).
			Msg("Starting HTTP server")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown()
}

// Shutdown stops the sweeper, drains in-flight requests, and closes the
// database pool.
func (s *Server) Shutdown() error {
	timeout := s.Config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.sweepCancel != nil {
		s.sweepCancel()
	}

	log.Info().Msg("Shutting down HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Db.Close()

	log.Info().Msg("Server stopped")
	return nil
}

// Router exposes the configured router for tests.
func (s *Server) Router() chi.Router {
	return s.router
}
