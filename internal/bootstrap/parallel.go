package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
	"github.com/subjectbrowser/subject/internal/infrastructure/extensions"
	"github.com/subjectbrowser/subject/internal/infrastructure/persistence/jsonfile"
	"github.com/subjectbrowser/subject/internal/infrastructure/persistence/sqlite"
	"github.com/subjectbrowser/subject/internal/logging"
)

const (
	dataDirPerm  = 0o755
	webkitSubdir = "webkit"
	cacheSubdir  = "webkit-cache"
)

// ParallelInitInput holds the input for the parallel initialization phase.
type ParallelInitInput struct {
	Config         *config.Config
	EagerStore     bool
	WarmExtensions bool
}

// ParallelInitResult holds what the parallel phase produced.
type ParallelInitResult struct {
	DataDir    string
	CacheDir   string
	Store      repository.Store
	Extensions *extensions.Loader
	// ExtensionCount is only filled when the cache was warmed.
	ExtensionCount int
	Duration       time.Duration
}

// RunParallelInit resolves the engine directories, prepares the store and
// scans the extensions directory concurrently. The first failure wins.
func RunParallelInit(ctx context.Context, input ParallelInitInput) (*ParallelInitResult, error) {
	cfg := input.Config
	start := time.Now()
	result := &ParallelInitResult{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dataDir, cacheDir, err := resolveWebKitDirs(cfg)
		if err != nil {
			return fmt.Errorf("resolve directories: %w", err)
		}
		result.DataDir, result.CacheDir = dataDir, cacheDir
		return nil
	})

	g.Go(func() error {
		store, err := openStore(gctx, cfg, input.EagerStore)
		if err != nil {
			return err
		}
		result.Store = store
		return nil
	})

	g.Go(func() error {
		loader, err := extensions.NewLoader(cfg.Extensions.Dir, cfg.Extensions.ScriptName, cfg.Extensions.CacheSize)
		if err != nil {
			return fmt.Errorf("create extension loader: %w", err)
		}
		result.Extensions = loader
		if !input.WarmExtensions {
			return nil
		}
		found, err := loader.Extensions(gctx)
		if err != nil {
			return fmt.Errorf("scan extensions: %w", err)
		}
		result.ExtensionCount = len(found)
		return nil
	})

	if err := g.Wait(); err != nil {
		if result.Store != nil {
			_ = result.Store.Close()
		}
		return nil, err
	}
	result.Duration = time.Since(start)

	logging.FromContext(ctx).Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Int("extensions", result.ExtensionCount).
		Dur("duration", result.Duration).
		Msg("parallel init complete")
	return result, nil
}

// NewStore returns the store selected by storage.backend. Nothing is opened yet.
func NewStore(cfg *config.Config) repository.Store {
	if cfg.Storage.Backend == config.StorageSQLite {
		return sqlite.NewStore(filepath.Join(cfg.Storage.DataDir, sqlite.DefaultFilename))
	}
	return jsonfile.NewStore(cfg.Storage.DataDir)
}

func openStore(ctx context.Context, cfg *config.Config, eager bool) (repository.Store, error) {
	if err := os.MkdirAll(cfg.Storage.DataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", cfg.Storage.DataDir, err)
	}
	store := NewStore(cfg)
	if db, ok := store.(*sqlite.Store); ok && eager {
		if err := db.Open(ctx); err != nil {
			return nil, fmt.Errorf("initialize database at %s: %w", db.Path(), err)
		}
	}
	return store, nil
}

// resolveWebKitDirs returns and creates the engine profile directories.
// Cookies and site data live next to the collections, the cache under the state directory.
func resolveWebKitDirs(cfg *config.Config) (dataDir, cacheDir string, err error) {
	dataDir = filepath.Join(cfg.Storage.DataDir, webkitSubdir)
	stateDir, err := config.GetStateDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve state directory: %w", err)
	}
	cacheDir = filepath.Join(stateDir, cacheSubdir)

	for _, dir := range []string{dataDir, cacheDir} {
		if err := os.MkdirAll(dir, dataDirPerm); err != nil {
			return "", "", fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return dataDir, cacheDir, nil
}
