package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/api/middleware"
	"github.com/cedrichille/monopoly-companion-app/internal/api/server"
	"github.com/cedrichille/monopoly-companion-app/internal/config"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/game"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
	"github.com/cedrichille/monopoly-companion-app/internal/sessioncache"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "monopoly-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Monopoly companion API")

	// Connect to database
	db, err := store.Connect(ctx, cfg.Database.DSN(), cfg.Database.ConnectTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Reference data
	loader := refdata.NewLoader(fs, jsonAdapter, dataStore, cfg.Fixtures.Workers)
	if cfg.Fixtures.LoadOnStart {
		if _, err := loader.Load(ctx, cfg.Fixtures.Dir); err != nil {
			logger.FatalCtx(ctx, "Failed to load reference data", zap.Error(err), zap.String("dir", cfg.Fixtures.Dir))
		}
	}

	catalog, err := refdata.NewCatalog(dataStore, cfg.Catalog.CacheSize)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create property catalog", zap.Error(err))
	}

	// Session cache
	var cache sessioncache.Cache = sessioncache.Noop{}
	if cfg.Redis.Address != "" {
		redisClient := adapter.NewRedisClient(adapter.RedisOptions{
			Address:     cfg.Redis.Address,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			MaxIdle:     cfg.Redis.MaxIdle,
			IdleTimeout: cfg.Redis.IdleTimeout,
		})
		defer func() { _ = redisClient.Close() }()

		if err := redisClient.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis unreachable, session reads will fall back to the database",
				zap.Error(err),
				zap.String("address", cfg.Redis.Address))
		}
		cache = sessioncache.NewRedis(redisClient, game.SessionKey, cfg.Redis.SessionTTL)
		logger.InfoCtx(ctx, "Session cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		logger.WarnCtx(ctx, "Redis address not configured, session cache disabled")
	}

	// Game service, resuming a persisted session if one exists
	svc := game.NewService(dataStore, cache, clock)
	session, err := svc.Restore(ctx)
	switch {
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		logger.FatalCtx(ctx, "Failed to restore game session", zap.Error(err))
	case session != nil:
		logger.InfoCtx(ctx, "Resumed game", zap.Int("turn", session.Position.Turn))
	default:
		logger.InfoCtx(ctx, "No game in progress")
	}

	read, write, idle := cfg.Server.Timeouts()
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  idle,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.Server.RateLimit,
			Burst:             cfg.Server.RateBurst,
		},
		FixturesDir: cfg.Fixtures.Dir,
	}

	srv := server.New(serverConfig, svc, catalog, loader)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// The original ctx is canceled by now
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
