package repository

// Collection names used in errors and logs.
const (
	CollectionHistory   = "history"
	CollectionBookmarks = "bookmarks"
	CollectionSession   = "session"
)

// Store groups the three collections owned by one browser instance.
type Store interface {
	History() HistoryRepository
	Bookmarks() BookmarkRepository
	Session() SessionRepository
	Close() error
}
