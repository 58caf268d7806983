// Package cli provides the command line front end: listings, store maintenance
// and a terminal omnibox built on Bubble Tea.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/subjectbrowser/subject/internal/bootstrap"
	"github.com/subjectbrowser/subject/internal/cli/styles"
	"github.com/subjectbrowser/subject/internal/domain/build"
)

// Options configures NewApp.
type Options struct {
	ConfigDir string
	// LogLevel forces logging to stderr at this level. Empty keeps the CLI quiet.
	LogLevel string
	Out      io.Writer
}

// App holds CLI dependencies.
type App struct {
	Runtime   *bootstrap.Runtime
	Theme     *styles.Theme
	BuildInfo build.Info
	Out       io.Writer
}

// NewApp initializes the runtime for a CLI invocation.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	level := opts.LogLevel
	if level == "" {
		level = os.Getenv("SUBJECT_LOG_LEVEL")
	}

	rt, err := bootstrap.Init(ctx, bootstrap.Options{
		ConfigDir: opts.ConfigDir,
		Stderr:    level != "",
		LogLevel:  level,
	})
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &App{
		Runtime: rt,
		Theme:   styles.NewTheme(),
		Out:     out,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.Runtime.Context()
}

// UseCases is a shortcut for the runtime use cases.
func (a *App) UseCases() *bootstrap.UseCases {
	return a.Runtime.UseCases
}

// Println writes one line to the command output.
func (a *App) Println(s string) {
	_, _ = fmt.Fprintln(a.Out, s)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Runtime == nil {
		return nil
	}
	return a.Runtime.Close()
}
