package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cedrichille/monopoly-companion-app/internal/logger"
)

// Connect opens a PostgreSQL connection, retrying with exponential backoff until
// the database answers or the timeout elapses. A zero timeout means a single attempt.
func Connect(ctx context.Context, dsn string, timeout time.Duration) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = timeout

	var policy backoff.BackOff = b
	if timeout <= 0 {
		policy = &backoff.StopBackOff{}
	}

	var db *gorm.DB
	operation := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		db = conn
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Database not ready, retrying",
			zap.Error(err),
			zap.Duration("retry_in", next))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// ApplySchema executes a schema script in a single transaction
func ApplySchema(ctx context.Context, db *gorm.DB, script string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(script).Error; err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		return nil
	})
}
