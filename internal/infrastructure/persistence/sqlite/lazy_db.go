package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/subjectbrowser/subject/internal/logging"
)

var errClosed = errors.New("database closed")

// LazyDB opens the database on first use. CLI commands that never touch a
// collection skip the WASM compile and migrations entirely.
type LazyDB struct {
	dbPath string

	mu  sync.Mutex
	db  *sql.DB
	err error
}

// NewLazyDB creates a lazy database handle for dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call.
// A failed open is remembered and returned on every later call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil && l.err == nil {
		logging.FromContext(ctx).Debug().Str("path", l.dbPath).Msg("opening database")
		l.db, l.err = NewConnection(ctx, l.dbPath)
	}
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	l.err = errClosed
	return err
}
