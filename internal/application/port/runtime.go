package port

import (
	"context"
	"errors"
)

var (
	ErrPkgConfigMissing        = errors.New("pkg-config not found")
	ErrPkgConfigPackageMissing = errors.New("package not found by pkg-config")
)

// RuntimeVersionProbe reports the installed version of a native library.
type RuntimeVersionProbe interface {
	ModVersion(ctx context.Context, pkgName string) (string, error)
}

// PkgConfigError describes why a version lookup failed.
type PkgConfigError struct {
	Package string
	Output  string
	Err     error
}

func (e *PkgConfigError) Error() string {
	if e.Output != "" {
		return e.Package + ": " + e.Err.Error() + ": " + e.Output
	}
	return e.Package + ": " + e.Err.Error()
}

func (e *PkgConfigError) Unwrap() error { return e.Err }
