package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
)

// File names inside the data directory.
const (
	HistoryFile   = "history.json"
	BookmarksFile = "bookmarks.json"
	SessionFile   = "session.json"
)

// Store keeps each collection in its own file under one directory.
type Store struct {
	dir       string
	history   *HistoryRepository
	bookmarks *BookmarkRepository
	session   *SessionRepository
}

// NewStore creates a store rooted at dir. Nothing touches the disk until the first save.
func NewStore(dir string) *Store {
	return &Store{
		dir:       dir,
		history:   NewHistoryRepository(filepath.Join(dir, HistoryFile)),
		bookmarks: NewBookmarkRepository(filepath.Join(dir, BookmarksFile)),
		session:   NewSessionRepository(filepath.Join(dir, SessionFile)),
	}
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) History() repository.HistoryRepository    { return s.history }
func (s *Store) Bookmarks() repository.BookmarkRepository { return s.bookmarks }
func (s *Store) Session() repository.SessionRepository    { return s.session }

// Close is a no-op; every call opens and closes its own file.
func (*Store) Close() error { return nil }

// HistoryRepository persists history as a JSON array of URL strings.
type HistoryRepository struct {
	file file[entity.History]
}

// NewHistoryRepository creates a history repository backed by path.
func NewHistoryRepository(path string) *HistoryRepository {
	return &HistoryRepository{file: file[entity.History]{collection: repository.CollectionHistory, path: path}}
}

func (r *HistoryRepository) Load(ctx context.Context) (entity.History, error) {
	h, err := r.file.load(ctx)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = entity.History{}
	}
	return h, nil
}

func (r *HistoryRepository) Save(ctx context.Context, h entity.History) error {
	if h == nil {
		h = entity.History{}
	}
	return r.file.save(ctx, h)
}

// BookmarkRepository persists bookmarks as a JSON array of {title, url} objects.
type BookmarkRepository struct {
	file file[entity.Bookmarks]
}

// NewBookmarkRepository creates a bookmark repository backed by path.
func NewBookmarkRepository(path string) *BookmarkRepository {
	return &BookmarkRepository{file: file[entity.Bookmarks]{collection: repository.CollectionBookmarks, path: path}}
}

func (r *BookmarkRepository) Load(ctx context.Context) (entity.Bookmarks, error) {
	b, err := r.file.load(ctx)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = entity.Bookmarks{}
	}
	return b, nil
}

func (r *BookmarkRepository) Save(ctx context.Context, b entity.Bookmarks) error {
	if b == nil {
		b = entity.Bookmarks{}
	}
	return r.file.save(ctx, b)
}

// SessionRepository persists the open tab URLs as a JSON array of strings.
type SessionRepository struct {
	file file[entity.SessionState]
}

// NewSessionRepository creates a session repository backed by path.
func NewSessionRepository(path string) *SessionRepository {
	return &SessionRepository{file: file[entity.SessionState]{collection: repository.CollectionSession, path: path}}
}

func (r *SessionRepository) Load(ctx context.Context) (entity.SessionState, error) {
	return r.file.load(ctx)
}

func (r *SessionRepository) Save(ctx context.Context, s entity.SessionState) error {
	return r.file.save(ctx, s)
}

var (
	_ repository.Store              = (*Store)(nil)
	_ repository.HistoryRepository  = (*HistoryRepository)(nil)
	_ repository.BookmarkRepository = (*BookmarkRepository)(nil)
	_ repository.SessionRepository  = (*SessionRepository)(nil)
)
