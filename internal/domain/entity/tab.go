package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// TabState tracks where a tab is in its page lifecycle.
type TabState int

const (
	TabCreated TabState = iota
	TabLoading
	TabLoaded
	TabClosed
)

// String returns a human-readable representation of the state.
func (s TabState) String() string {
	switch s {
	case TabCreated:
		return "created"
	case TabLoading:
		return "loading"
	case TabLoaded:
		return "loaded"
	case TabClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Tab is the shell-side record of one open document view.
type Tab struct {
	ID        TabID
	URL       string
	Title     string
	State     TabState
	CreatedAt time.Time
}

// NewTab creates a tab targeting url.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		State:     TabCreated,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the title, falling back to URL or "New Tab".
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.URL != "" {
		return t.URL
	}
	return "New Tab"
}
