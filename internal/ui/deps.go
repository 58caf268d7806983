// Package ui provides the GTK4 presentation layer for the subject browser.
package ui

import (
	"context"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
)

// AppID is the application identifier for GTK.
const AppID = "io.github.subjectbrowser.subject"

// Dependencies holds all injected dependencies for the UI layer.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager delivers live reloads. Optional.
	ConfigManager *config.Manager
	// InitialURL is opened in an extra tab after the session is restored.
	InitialURL string

	// NewFactory builds the engine once GTK is initialized.
	NewFactory func(ctx context.Context) (port.WebViewFactory, error)
	// TabDeps seeds the tab manager. Factory and Presenter are filled in by the app.
	TabDeps usecase.TabManagerDeps

	Session      *usecase.ManageSessionUseCase
	Bookmarks    *usecase.ManageBookmarksUseCase
	Autocomplete *usecase.AutocompleteUseCase
	Downloads    *usecase.PrepareDownloadUseCase
	Permissions  *usecase.HandlePermissionUseCase
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.NewFactory == nil {
		return ErrMissingDependency("NewFactory")
	}
	if d.Session == nil {
		return ErrMissingDependency("Session")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
