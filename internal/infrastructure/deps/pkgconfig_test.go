package deps

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/application/port"
)

// fakePkgConfig writes a shell script standing in for pkg-config.
func fakePkgConfig(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pkg-config")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestModVersion(t *testing.T) {
	probe := &PkgConfigProbe{Binary: fakePkgConfig(t, `echo "2.48.1"`)}

	v, err := probe.ModVersion(context.Background(), "webkitgtk-6.0")
	require.NoError(t, err)
	assert.Equal(t, "2.48.1", v)
}

func TestModVersion_PackageMissing(t *testing.T) {
	probe := &PkgConfigProbe{Binary: fakePkgConfig(t, `echo "Package gtk4 was not found"; exit 1`)}

	_, err := probe.ModVersion(context.Background(), "gtk4")
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrPkgConfigPackageMissing)

	var pcErr *port.PkgConfigError
	require.ErrorAs(t, err, &pcErr)
	assert.Equal(t, "gtk4", pcErr.Package)
	assert.Contains(t, pcErr.Output, "was not found")
}

func TestModVersion_CommandMissing(t *testing.T) {
	probe := &PkgConfigProbe{Binary: filepath.Join(t.TempDir(), "nope")}

	_, err := probe.ModVersion(context.Background(), "gtk4")
	assert.ErrorIs(t, err, port.ErrPkgConfigMissing)
}
