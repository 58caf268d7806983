// Package jsonfile stores the shell collections as pretty-printed JSON files.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// file is one JSON document holding a whole collection of type T.
type file[T any] struct {
	collection string
	path       string
}

// load decodes the document. A missing file yields the zero value.
func (f file[T]) load(ctx context.Context) (T, error) {
	var v T

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.FromContext(ctx).Debug().
			Str("collection", f.collection).
			Str("path", f.path).
			Msg("collection file missing, starting empty")
		return v, nil
	}
	if err != nil {
		return v, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &repository.MalformedDataError{
			Collection: f.collection,
			Path:       f.path,
			Err:        err,
		}
	}
	return v, nil
}

// save replaces the document. The data is written to a temporary file in the
// same directory and renamed over the target, so readers never observe a
// partial write.
func (f file[T]) save(ctx context.Context, v T) error {
	data, err := encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.collection, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("collection", f.collection).
		Str("path", f.path).
		Int("bytes", len(data)).
		Msg("collection saved")
	return nil
}

// encode renders v with two-space indentation, without HTML escaping and with
// a trailing newline.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
