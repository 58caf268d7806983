package entity

import (
	"errors"
	"strings"
)

// ErrInvalidBookmark is returned when a bookmark has no URL.
var ErrInvalidBookmark = errors.New("bookmark url is required")

// Bookmark is a saved page. Uniqueness is not enforced.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewBookmark creates a bookmark, using the URL as title when title is empty.
func NewBookmark(title, url string) Bookmark {
	title = strings.TrimSpace(title)
	if title == "" {
		title = url
	}
	return Bookmark{Title: title, URL: url}
}

// Validate checks mandatory fields.
func (b Bookmark) Validate() error {
	if strings.TrimSpace(b.URL) == "" {
		return ErrInvalidBookmark
	}
	return nil
}

// Bookmarks is the ordered bookmark list.
type Bookmarks []Bookmark

// URLs returns the bookmark URLs in saved order.
func (bs Bookmarks) URLs() []string {
	urls := make([]string, len(bs))
	for i, b := range bs {
		urls[i] = b.URL
	}
	return urls
}

// Remove returns a copy without the bookmark at index.
func (bs Bookmarks) Remove(index int) (Bookmarks, bool) {
	if index < 0 || index >= len(bs) {
		return bs, false
	}
	out := make(Bookmarks, 0, len(bs)-1)
	out = append(out, bs[:index]...)
	out = append(out, bs[index+1:]...)
	return out, true
}
