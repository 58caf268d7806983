package entity

import "encoding/json"

// DefaultHistoryLimit is the number of most recent entries kept in history.
const DefaultHistoryLimit = 500

// HistoryEntry is one navigated URL. Entries are stored as bare JSON strings.
type HistoryEntry struct {
	URL string
}

// MarshalJSON encodes the entry as its URL string.
func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	return marshalRaw(e.URL)
}

// UnmarshalJSON decodes an entry from a JSON string.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &e.URL)
}

// History is the insertion-ordered visit log, oldest first.
// Duplicates are allowed.
type History []HistoryEntry

// NewHistory builds a History from plain URLs.
func NewHistory(urls ...string) History {
	h := make(History, 0, len(urls))
	for _, u := range urls {
		h = append(h, HistoryEntry{URL: u})
	}
	return h
}

// Append adds url at the end and drops entries from the front so that at most
// limit entries remain. A limit <= 0 disables truncation.
func (h History) Append(url string, limit int) History {
	out := append(h, HistoryEntry{URL: url})
	return out.Truncate(limit)
}

// Truncate keeps only the most recent limit entries.
func (h History) Truncate(limit int) History {
	if limit <= 0 || len(h) <= limit {
		return h
	}
	kept := make(History, limit)
	copy(kept, h[len(h)-limit:])
	return kept
}

// URLs returns the entry URLs, oldest first.
func (h History) URLs() []string {
	urls := make([]string, len(h))
	for i, e := range h {
		urls[i] = e.URL
	}
	return urls
}

// Last returns the most recent entry URL, or "" when empty.
func (h History) Last() string {
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1].URL
}
