//go:build !webkit_cgo

package ui

import (
	"context"

	"github.com/subjectbrowser/subject/internal/infrastructure/webkit"
)

// App is a placeholder when the binary is built without the webkit_cgo tag.
type App struct {
	deps *Dependencies
}

// New validates deps. The returned App cannot run.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run reports that the windowed shell is not compiled in.
func (a *App) Run(context.Context) error {
	return webkit.ErrUnavailable
}

// Quit does nothing; there is no main loop to stop.
func (a *App) Quit() {}
