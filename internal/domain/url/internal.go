package url

import (
	neturl "net/url"
	"strings"
)

// InternalScheme is the reserved pseudo-scheme for in-app intents.
const InternalScheme = "subject"

// Internal pages served by the shell itself.
const (
	HomePage   = InternalScheme + "://newtab"
	searchPath = "search"
)

// IsInternal reports whether uri uses the reserved scheme.
func IsInternal(uri string) bool {
	return strings.HasPrefix(strings.ToLower(uri), InternalScheme+":")
}

// ParseInternalSearch extracts the query from a reserved-scheme search URL.
// All of these carry the query "foo":
//
//	subject:/search/foo
//	subject:///search/foo
//	subject://search/foo
//
// The query is returned path-unescaped. found is false for any other URL,
// including a search URL with an empty query.
func ParseInternalSearch(uri string) (query string, found bool) {
	if !IsInternal(uri) {
		return "", false
	}

	rest := uri[len(InternalScheme)+1:]
	rest = strings.TrimLeft(rest, "/")

	if !strings.HasPrefix(rest, searchPath+"/") {
		return "", false
	}
	rest = rest[len(searchPath)+1:]

	// drop fragment and query string the engine may have appended
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	if unescaped, err := neturl.PathUnescape(rest); err == nil {
		rest = unescaped
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// InternalSearchURL builds the reserved-scheme URL that asks the shell to search for query.
func InternalSearchURL(query string) string {
	return InternalScheme + "://" + searchPath + "/" + neturl.PathEscape(query)
}

// InternalPage returns the page name of an internal URL ("newtab" for subject://newtab).
func InternalPage(uri string) string {
	if !IsInternal(uri) {
		return ""
	}
	rest := strings.TrimLeft(uri[len(InternalScheme)+1:], "/")
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
