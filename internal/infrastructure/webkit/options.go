// Package webkit adapts WebKitGTK 6 to the application ports.
//
// The engine bindings are only compiled with the webkit_cgo build tag. Without
// it NewFactory reports ErrUnavailable and the shell runs headless commands only.
package webkit

import (
	"errors"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
)

// ErrUnavailable is returned when the binary was built without WebKitGTK.
var ErrUnavailable = errors.New("webkit: built without webkit_cgo support")

// Options configures the shared browsing profile.
type Options struct {
	// DataDir and CacheDir hold cookies, local storage and the HTTP cache.
	DataDir  string
	CacheDir string

	EnableDevTools bool

	// Scheme serves subject:// pages. Nil registers the built-in pages.
	Scheme *SchemeHandler

	Downloads      *usecase.PrepareDownloadUseCase
	DownloadEvents port.DownloadEventHandler
	Permissions    *usecase.HandlePermissionUseCase
}

func (o *Options) validate() error {
	if o.DataDir == "" {
		return errors.New("data directory cannot be empty")
	}
	if o.CacheDir == "" {
		return errors.New("cache directory cannot be empty")
	}
	if o.Scheme == nil {
		o.Scheme = NewSchemeHandler()
	}
	return nil
}
