// Package bootstrap assembles configuration, logging, storage and use cases
// for both the browser and the command line tools.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
	"github.com/subjectbrowser/subject/internal/infrastructure/extensions"
	"github.com/subjectbrowser/subject/internal/logging"
)

// Options tunes Init for the caller.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// Stderr writes console logs to stderr. The CLI keeps it clean for its own output.
	Stderr bool
	// LogLevel overrides logging.level when set.
	LogLevel string
	// EagerStore opens a SQLite store during init instead of on first use.
	EagerStore bool
	// WarmExtensions reads every extension payload into the cache during init.
	WarmExtensions bool
}

// Runtime is everything a front end needs to drive the shell.
type Runtime struct {
	ConfigManager *config.Manager
	Config        *config.Config
	Logger        zerolog.Logger
	Store         repository.Store
	Extensions    *extensions.Loader
	UseCases      *UseCases

	// WebKitDataDir and WebKitCacheDir hold the engine profile.
	WebKitDataDir  string
	WebKitCacheDir string

	Timer *StartupTimer

	ctx        context.Context
	logCleanup func()
}

// Init loads the configuration, builds the logger and runs the parallel init phase.
func Init(ctx context.Context, opts Options) (*Runtime, error) {
	timer := NewStartupTimer()

	mgr, err := newConfigManager(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := mgr.Get()
	timer.Mark("config")

	logger, logCleanup, logErr := NewLogger(cfg, opts)
	ctx = logging.WithContext(ctx, logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	timer.Mark("logger")

	initResult, err := RunParallelInit(ctx, ParallelInitInput{
		Config:         cfg,
		EagerStore:     opts.EagerStore,
		WarmExtensions: opts.WarmExtensions,
	})
	if err != nil {
		logCleanup()
		return nil, err
	}
	timer.MarkDuration("parallel_phase", initResult.Duration)

	rt := &Runtime{
		ConfigManager:  mgr,
		Config:         cfg,
		Logger:         logger,
		Store:          initResult.Store,
		Extensions:     initResult.Extensions,
		UseCases:       NewUseCases(cfg, initResult.Store, initResult.Extensions),
		WebKitDataDir:  initResult.DataDir,
		WebKitCacheDir: initResult.CacheDir,
		Timer:          timer,
		ctx:            ctx,
		logCleanup:     logCleanup,
	}
	timer.Mark("use_cases")
	return rt, nil
}

func newConfigManager(dir string) (*config.Manager, error) {
	if dir != "" {
		return config.NewManagerWithDir(dir)
	}
	return config.NewManager()
}

// NewLogger builds the logger described by cfg.Logging. The cleanup closes the log file.
func NewLogger(cfg *config.Config, opts Options) (zerolog.Logger, func(), error) {
	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	return logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.File.Enabled,
			Dir:           cfg.Logging.File.Dir,
			MaxSizeMB:     cfg.Logging.File.MaxSizeMB,
			MaxBackups:    cfg.Logging.File.MaxBackups,
			WriteToStderr: opts.Stderr,
		},
	)
}

// Context returns the context carrying the runtime logger.
func (r *Runtime) Context() context.Context {
	return r.ctx
}

// Close releases the store and the log file. Safe to call more than once.
func (r *Runtime) Close() error {
	var err error
	if r.Store != nil {
		if closeErr := r.Store.Close(); closeErr != nil {
			err = fmt.Errorf("failed to close store: %w", closeErr)
		}
		r.Store = nil
	}
	if r.logCleanup != nil {
		r.logCleanup()
		r.logCleanup = nil
	}
	return err
}
