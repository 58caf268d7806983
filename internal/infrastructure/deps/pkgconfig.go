// Package deps probes the native libraries the windowed shell links against.
package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/subjectbrowser/subject/internal/application/port"
)

// PkgConfigProbe uses pkg-config to query module versions.
type PkgConfigProbe struct {
	// Binary overrides the pkg-config executable. Empty means look it up in PATH.
	Binary string
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{}
}

// ModVersion runs pkg-config --modversion for pkgName.
func (p *PkgConfigProbe) ModVersion(ctx context.Context, pkgName string) (string, error) {
	bin := p.Binary
	if bin == "" {
		bin = "pkg-config"
	}
	pc, err := exec.LookPath(bin)
	if err != nil {
		return "", &port.PkgConfigError{Package: pkgName, Err: port.ErrPkgConfigMissing}
	}

	out, err := exec.CommandContext(ctx, pc, "--modversion", pkgName).CombinedOutput()
	if err != nil {
		return "", &port.PkgConfigError{
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}
