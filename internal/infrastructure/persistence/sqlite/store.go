package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/logging"
)

// Store keeps the three collections in one SQLite database.
type Store struct {
	lazy      *LazyDB
	history   *historyRepo
	bookmarks *bookmarkRepo
	session   *sessionRepo
}

// NewStore creates a store for the database at dbPath. The file is opened on first use.
func NewStore(dbPath string) *Store {
	lazy := NewLazyDB(dbPath)
	return &Store{
		lazy:      lazy,
		history:   &historyRepo{lazy: lazy},
		bookmarks: &bookmarkRepo{lazy: lazy},
		session:   &sessionRepo{lazy: lazy},
	}
}

func (s *Store) History() repository.HistoryRepository    { return s.history }
func (s *Store) Bookmarks() repository.BookmarkRepository { return s.bookmarks }
func (s *Store) Session() repository.SessionRepository    { return s.session }

// Open opens the database now instead of on first use, running migrations.
func (s *Store) Open(ctx context.Context) error {
	_, err := s.lazy.DB(ctx)
	return err
}

// Path returns the database file.
func (s *Store) Path() string { return s.lazy.Path() }

// Close closes the database if it was opened.
func (s *Store) Close() error {
	return s.lazy.Close()
}

// replaceAll empties table and refills it inside one transaction.
func replaceAll(ctx context.Context, lazy *LazyDB, table string, fill func(tx *sql.Tx) error) error {
	db, err := lazy.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// table is always one of the package constants below
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if err := fill(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}

	logging.FromContext(ctx).Debug().Str("table", table).Msg("collection saved")
	return nil
}

const (
	tableHistory   = "history"
	tableBookmarks = "bookmarks"
	tableSession   = "session_tabs"
)

type historyRepo struct {
	lazy *LazyDB
}

func (r *historyRepo) Load(ctx context.Context) (entity.History, error) {
	urls, err := loadURLs(ctx, r.lazy, repository.CollectionHistory, "SELECT url FROM history ORDER BY position")
	if err != nil {
		return nil, err
	}
	return entity.NewHistory(urls...), nil
}

func (r *historyRepo) Save(ctx context.Context, h entity.History) error {
	return replaceAll(ctx, r.lazy, tableHistory, func(tx *sql.Tx) error {
		return insertURLs(ctx, tx, "INSERT INTO history (position, url) VALUES (?, ?)", h.URLs())
	})
}

type sessionRepo struct {
	lazy *LazyDB
}

func (r *sessionRepo) Load(ctx context.Context) (entity.SessionState, error) {
	urls, err := loadURLs(ctx, r.lazy, repository.CollectionSession, "SELECT url FROM session_tabs ORDER BY position")
	if err != nil {
		return entity.SessionState{}, err
	}
	return entity.NewSessionState(urls), nil
}

func (r *sessionRepo) Save(ctx context.Context, s entity.SessionState) error {
	return replaceAll(ctx, r.lazy, tableSession, func(tx *sql.Tx) error {
		return insertURLs(ctx, tx, "INSERT INTO session_tabs (position, url) VALUES (?, ?)", s.URLs)
	})
}

type bookmarkRepo struct {
	lazy *LazyDB
}

func (r *bookmarkRepo) Load(ctx context.Context) (entity.Bookmarks, error) {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT title, url FROM bookmarks ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := entity.Bookmarks{}
	for rows.Next() {
		var b entity.Bookmark
		if err := rows.Scan(&b.Title, &b.URL); err != nil {
			return nil, malformed(repository.CollectionBookmarks, r.lazy.Path(), err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *bookmarkRepo) Save(ctx context.Context, bookmarks entity.Bookmarks) error {
	return replaceAll(ctx, r.lazy, tableBookmarks, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO bookmarks (position, title, url) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare bookmark insert: %w", err)
		}
		defer stmt.Close()

		for i, b := range bookmarks {
			if _, err := stmt.ExecContext(ctx, i, b.Title, b.URL); err != nil {
				return fmt.Errorf("failed to insert bookmark %d: %w", i, err)
			}
		}
		return nil
	})
}

func loadURLs(ctx context.Context, lazy *LazyDB, collection, query string) ([]string, error) {
	db, err := lazy.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, malformed(collection, lazy.Path(), err)
		}
		urls = append(urls, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", collection, err)
	}
	return urls, nil
}

func insertURLs(ctx context.Context, tx *sql.Tx, query string, urls []string) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, u := range urls {
		if _, err := stmt.ExecContext(ctx, i, u); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}
	return nil
}

func malformed(collection, path string, err error) error {
	return &repository.MalformedDataError{Collection: collection, Path: path, Err: err}
}

var _ repository.Store = (*Store)(nil)
