package refdata

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
)

// Loader reads the fixture files and replaces the reference tables
//
//go:generate mockgen -source=loader.go -destination=../mocks/fixture_loader.go -package=mocks -mock_names=Loader=MockFixtureLoader
type Loader interface {
	// Read parses and validates the fixture files in dir
	Read(ctx context.Context, dir string) (*Fixtures, error)

	// Load reads the fixture files in dir and replaces the reference tables with them.
	// Every per-game table is cleared in the same transaction.
	Load(ctx context.Context, dir string) (*Summary, error)
}

type loader struct {
	fs      adapter.FileSystem
	json    adapter.JSON
	store   store.Store
	workers int
}

// NewLoader creates a fixture loader; files are parsed on a pool of the given size
func NewLoader(fs adapter.FileSystem, json adapter.JSON, st store.Store, workers int) Loader {
	if workers <= 0 {
		workers = 4
	}
	return &loader{
		fs:      fs,
		json:    json,
		store:   st,
		workers: workers,
	}
}

// Read parses and validates the fixture files in dir
func (l *loader) Read(ctx context.Context, dir string) (*Fixtures, error) {
	var fixtures Fixtures

	pool := pond.NewPool(l.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	group.SubmitErr(
		func() error { return l.readFile(filepath.Join(dir, ActionTypeFile), &fixtures.ActionTypes) },
		func() error { return l.readFile(filepath.Join(dir, GameVersionFile), &fixtures.GameVersions) },
		func() error { return l.readFile(filepath.Join(dir, PlayersFile), &fixtures.Players) },
		func() error { return l.readFile(filepath.Join(dir, PropertyFile), &fixtures.Properties) },
	)
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := fixtures.Validate(); err != nil {
		return nil, err
	}

	return &fixtures, nil
}

func (l *loader) readFile(path string, v interface{}) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}
	if err := l.json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse fixture file %s: %w", path, err)
	}
	return nil
}

// Load reads the fixture files in dir and replaces the reference tables with them
func (l *loader) Load(ctx context.Context, dir string) (*Summary, error) {
	fixtures, err := l.Read(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := l.store.ReplaceReferenceData(ctx, fixtures.ReplaceInput()); err != nil {
		return nil, fmt.Errorf("failed to replace reference data: %w", err)
	}

	summary := fixtures.Summary()
	logger.InfoCtx(ctx, "Reference data loaded",
		zap.String("dir", dir),
		zap.Int("game_versions", summary.GameVersions),
		zap.Int("action_types", summary.ActionTypes),
		zap.Int("players", summary.Players),
		zap.Int("properties", summary.Properties),
	)

	return &summary, nil
}
