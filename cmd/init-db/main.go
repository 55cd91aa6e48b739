package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/config"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
)

var (
	configFile   = flag.String("config", "", "Path to configuration file")
	envPath      = flag.String("env", "config/", "Path to environment files")
	skipFixtures = flag.Bool("skip-fixtures", false, "Apply the schema without loading reference data")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadInitDBConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "monopoly-init-db",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx := context.Background()
	fs := adapter.NewFileSystem()

	script, err := fs.ReadFile(cfg.SchemaPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to read schema", zap.Error(err), zap.String("path", cfg.SchemaPath))
	}

	db, err := store.Connect(ctx, cfg.Database.DSN(), cfg.Database.ConnectTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := store.ApplySchema(ctx, db, string(script)); err != nil {
		logger.FatalCtx(ctx, "Failed to apply schema", zap.Error(err), zap.String("path", cfg.SchemaPath))
	}
	logger.InfoCtx(ctx, "Schema applied", zap.String("path", cfg.SchemaPath))

	if *skipFixtures || !cfg.Fixtures.LoadOnStart {
		logger.InfoCtx(ctx, "Skipping reference data")
		return
	}

	loader := refdata.NewLoader(fs, adapter.NewJSON(), store.NewPGStore(db), cfg.Fixtures.Workers)
	if _, err := loader.Load(ctx, cfg.Fixtures.Dir); err != nil {
		logger.FatalCtx(ctx, "Failed to load reference data", zap.Error(err), zap.String("dir", cfg.Fixtures.Dir))
	}
}
