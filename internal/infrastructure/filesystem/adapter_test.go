package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/infrastructure/filesystem"
)

func TestAdapter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs := filesystem.New()

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, fs.MkdirAll(ctx, nested))

	isDir, err := fs.IsDirectory(ctx, nested)
	require.NoError(t, err)
	assert.True(t, isDir)

	file := filepath.Join(nested, "f.txt")
	exists, err := fs.Exists(ctx, file)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	exists, err = fs.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, exists)

	isDir, err = fs.IsDirectory(ctx, file)
	require.NoError(t, err)
	assert.False(t, isDir)
}
