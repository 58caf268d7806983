package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "tabs")
	ctx = WithTabID(ctx, "t-1")
	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"tabs"`)
	assert.Contains(t, out, `"tab_id":"t-1"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.io", TruncateURL("https://a.io", 60))
	assert.Equal(t, "https://...", TruncateURL("https://example.com/long", 11))
}

func TestRotator_RollsOverAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(dir, "subject.log", 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// force tiny size so every write rotates
	r.maxSize = 8
	for i := 0; i < 4; i++ {
		_, err := r.Write([]byte("0123456789"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if e.Name() != "subject.log" {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 1)
	assert.FileExists(t, filepath.Join(dir, "subject.log"))
}
