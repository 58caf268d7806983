// Package autocomplete derives omnibox suggestions from history and bookmarks.
package autocomplete

import (
	"strings"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// DefaultLimit caps the number of suggestions shown for one keystroke.
const DefaultLimit = 10

// Source indicates where a suggestion came from.
type Source int

const (
	SourceHistory Source = iota
	SourceBookmark
)

// Suggestion is one candidate URL.
type Suggestion struct {
	URL    string
	Title  string
	Source Source
}

// Suggest returns up to limit distinct URLs from history and bookmarks that
// contain text, compared case-insensitively. History comes first, most recent
// visit first, then bookmarks in saved order. Empty text matches everything.
func Suggest(history entity.History, bookmarks entity.Bookmarks, text string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	needle := strings.ToLower(strings.TrimSpace(text))

	seen := make(map[string]struct{}, limit)
	out := make([]Suggestion, 0, limit)

	add := func(s Suggestion) bool {
		if s.URL == "" {
			return len(out) < limit
		}
		if _, dup := seen[s.URL]; dup {
			return true
		}
		if !Matches(s.URL, needle) {
			return true
		}
		seen[s.URL] = struct{}{}
		out = append(out, s)
		return len(out) < limit
	}

	for i := len(history) - 1; i >= 0; i-- {
		if !add(Suggestion{URL: history[i].URL, Source: SourceHistory}) {
			return out
		}
	}
	for _, b := range bookmarks {
		if !add(Suggestion{URL: b.URL, Title: b.Title, Source: SourceBookmark}) {
			return out
		}
	}
	return out
}

// URLs flattens suggestions into their URLs.
func URLs(suggestions []Suggestion) []string {
	urls := make([]string, len(suggestions))
	for i, s := range suggestions {
		urls[i] = s.URL
	}
	return urls
}

// Matches reports whether url contains the already lower-cased needle.
func Matches(url, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(url), needle)
}
