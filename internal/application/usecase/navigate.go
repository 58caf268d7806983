// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"sync"

	"github.com/subjectbrowser/subject/internal/domain/url"
	"github.com/subjectbrowser/subject/internal/logging"
)

// Interception tells the tab manager how to treat a URI reported by the engine.
type Interception struct {
	// Rewrite is non-empty when the URI must be replaced by another load.
	Rewrite string
	// Internal is true for reserved-scheme URIs. They are never recorded,
	// so the home page stays out of history along with search intents.
	Internal bool
	// Query is the search text carried by an internal search URI.
	Query string
}

// NavigateUseCase turns typed text and engine URIs into navigation targets.
type NavigateUseCase struct {
	mu       sync.RWMutex
	resolver *url.Resolver
	homePage string
}

// NewNavigateUseCase creates a navigation use case.
// An empty homePage falls back to the built-in new-tab page.
func NewNavigateUseCase(searchEngine, homePage string) *NavigateUseCase {
	if homePage == "" {
		homePage = url.HomePage
	}
	return &NavigateUseCase{
		resolver: url.NewResolver(searchEngine),
		homePage: homePage,
	}
}

// SetSearchEngine swaps the search endpoint, typically after a config reload.
func (uc *NavigateUseCase) SetSearchEngine(searchEngine string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.resolver = url.NewResolver(searchEngine)
}

// SetHomePage changes the page opened by new tabs and Home.
func (uc *NavigateUseCase) SetHomePage(homePage string) {
	if homePage == "" {
		homePage = url.HomePage
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.homePage = homePage
}

// HomePage returns the configured home page.
func (uc *NavigateUseCase) HomePage() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.homePage
}

// Resolve converts address-bar text into a URL. Empty text yields "".
func (uc *NavigateUseCase) Resolve(ctx context.Context, text string) string {
	uc.mu.RLock()
	resolver := uc.resolver
	uc.mu.RUnlock()

	resolved := resolver.Resolve(text)
	logging.FromContext(ctx).Debug().
		Str("input", text).
		Str("resolved", logging.TruncateURL(resolved, 120)).
		Msg("resolved navigation input")
	return resolved
}

// SearchURL returns the search endpoint URL for query.
func (uc *NavigateUseCase) SearchURL(query string) string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.resolver.SearchURL(query)
}

// Intercept classifies a URI the engine reports as displayed.
func (uc *NavigateUseCase) Intercept(ctx context.Context, uri string) Interception {
	if !url.IsInternal(uri) {
		return Interception{}
	}

	if query, ok := url.ParseInternalSearch(uri); ok {
		rewrite := uc.SearchURL(query)
		logging.FromContext(ctx).Debug().
			Str("query", query).
			Str("rewrite", rewrite).
			Msg("intercepted internal search")
		return Interception{Rewrite: rewrite, Internal: true, Query: query}
	}

	return Interception{Internal: true}
}
