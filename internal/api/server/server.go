package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/api/middleware"
	"github.com/cedrichille/monopoly-companion-app/internal/api/rest"
	"github.com/cedrichille/monopoly-companion-app/internal/game"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
	Auth         middleware.AuthConfig
	RateLimit    middleware.RateLimitConfig
	FixturesDir  string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	game       game.Service
	catalog    refdata.Catalog
	loader     refdata.Loader
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, svc game.Service, catalog refdata.Catalog, loader refdata.Loader) *Server {
	return &Server{
		config:  cfg,
		game:    svc,
		catalog: catalog,
		loader:  loader,
	}
}

// Router builds the gin engine with middleware and every route
func (s *Server) Router() (*gin.Engine, error) {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	auth, err := middleware.NewAuthenticator(s.config.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	limiter, err := middleware.NewRateLimiter(s.config.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSOrigins))
	if limiter.Enabled() {
		router.Use(middleware.RateLimit(limiter))
	}

	restHandler := rest.NewHandler(s.game, s.catalog, s.loader, s.config.FixturesDir)
	rest.SetupRoutes(router, restHandler, auth)

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
