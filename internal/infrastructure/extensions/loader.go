// Package extensions discovers script payloads under the extensions directory.
//
// Layout: <dir>/<name>/<script>, one subdirectory per extension. Entries are
// returned sorted by name so injection order is stable between loads.
package extensions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/logging"
)

const (
	// DefaultScriptName is the payload file looked up in each extension directory.
	DefaultScriptName = "inject.js"
	// DefaultCacheSize bounds the number of payloads kept in memory.
	DefaultCacheSize = 64
)

type cachedScript struct {
	modTime time.Time
	size    int64
	source  string
}

// Loader reads extension payloads from disk, caching them until the file changes.
type Loader struct {
	dir        string
	scriptName string
	cache      *lru.Cache[string, cachedScript]
}

var _ port.ExtensionSource = (*Loader)(nil)

// NewLoader creates a loader for dir. Empty scriptName and non-positive
// cacheSize fall back to the defaults.
func NewLoader(dir, scriptName string, cacheSize int) (*Loader, error) {
	if scriptName == "" {
		scriptName = DefaultScriptName
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, cachedScript](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create extension cache: %w", err)
	}
	return &Loader{dir: dir, scriptName: scriptName, cache: cache}, nil
}

// Dir returns the extensions directory.
func (l *Loader) Dir() string { return l.dir }

// ScriptName returns the payload file name.
func (l *Loader) ScriptName() string { return l.scriptName }

// Extensions returns every readable payload. A missing directory yields none.
func (l *Loader) Extensions(ctx context.Context) ([]entity.Extension, error) {
	log := logging.FromContext(ctx)

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("dir", l.dir).Msg("extensions directory missing")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read extensions directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	extensions := make([]entity.Extension, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(l.dir, entry.Name(), l.scriptName)
		source, ok, err := l.read(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable extension")
			continue
		}
		if !ok {
			continue
		}
		extensions = append(extensions, entity.Extension{
			Name:   entry.Name(),
			Path:   path,
			Source: source,
		})
	}

	log.Debug().Int("count", len(extensions)).Msg("extensions loaded")
	return extensions, nil
}

// read returns the payload at path; ok is false when no script exists there.
func (l *Loader) read(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.cache.Remove(path)
			return "", false, nil
		}
		return "", false, err
	}
	if info.IsDir() {
		return "", false, nil
	}

	if cached, hit := l.cache.Get(path); hit && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return cached.source, true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.cache.Remove(path)
		return "", false, err
	}
	l.cache.Add(path, cachedScript{modTime: info.ModTime(), size: info.Size(), source: string(data)})
	return string(data), true, nil
}

// Cached reports how many payloads are currently cached.
func (l *Loader) Cached() int {
	return l.cache.Len()
}

// Purge drops every cached payload.
func (l *Loader) Purge() {
	l.cache.Purge()
}
