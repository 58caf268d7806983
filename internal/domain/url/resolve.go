// Package url turns address-bar text into navigable URLs.
package url

import "strings"

// DefaultSearchEngine is used when no engine is configured.
// The query is appended verbatim; the engine percent-encodes it on load.
const DefaultSearchEngine = "https://www.google.com/search?q="

// Resolver classifies typed text as a search query or an address.
type Resolver struct {
	// SearchEngine is either a prefix the query is appended to, or a
	// template containing a single %s.
	SearchEngine string
}

// NewResolver creates a resolver for the given search engine.
func NewResolver(searchEngine string) *Resolver {
	if strings.TrimSpace(searchEngine) == "" {
		searchEngine = DefaultSearchEngine
	}
	return &Resolver{SearchEngine: searchEngine}
}

// Resolve converts raw address-bar text into a URL.
//
//	"hello world"   → SearchEngine + "hello world"
//	"example.com"   → "http://example.com"
//	"https://x.io"  → "https://x.io"
//
// Text with a dot is always an address, so "node.js tutorial" becomes
// "http://node.js tutorial".
func (r *Resolver) Resolve(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	if !strings.Contains(text, "://") && !strings.Contains(text, ".") {
		return r.SearchURL(text)
	}

	if HasHTTPScheme(text) {
		return text
	}
	return "http://" + text
}

// SearchURL builds the search endpoint URL for query.
func (r *Resolver) SearchURL(query string) string {
	engine := r.SearchEngine
	if engine == "" {
		engine = DefaultSearchEngine
	}
	if strings.Contains(engine, "%s") {
		return strings.Replace(engine, "%s", query, 1)
	}
	return engine + query
}

// HasHTTPScheme reports whether s starts with http:// or https://.
func HasHTTPScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
