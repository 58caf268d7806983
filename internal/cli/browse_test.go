package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("SUBJECT_LOG_LEVEL", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_DOWNLOAD_DIR", filepath.Join(root, "downloads"))
}

func TestNewApp(t *testing.T) {
	isolate(t)
	out := &bytes.Buffer{}

	app, err := NewApp(context.Background(), Options{Out: out})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	app.Println("hello")
	assert.Equal(t, "hello\n", out.String())
	assert.NotNil(t, app.UseCases().Navigate)
	assert.NotNil(t, app.Ctx())
}

func TestBrowserDependencies(t *testing.T) {
	isolate(t)
	app, err := NewApp(context.Background(), Options{Out: &bytes.Buffer{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	deps := BrowserDependencies(app.Runtime, "example.com")
	require.NoError(t, deps.Validate())
	assert.Equal(t, "example.com", deps.InitialURL)
	assert.Same(t, app.Runtime.Config, deps.Config)
	assert.Same(t, app.UseCases().Session, deps.Session)
	assert.Same(t, app.UseCases().Navigate, deps.TabDeps.Navigate)
}
