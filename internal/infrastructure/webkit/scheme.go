package webkit

import (
	"context"
	_ "embed"
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/subjectbrowser/subject/internal/domain/url"
	"github.com/subjectbrowser/subject/internal/logging"
)

//go:embed pages/newtab.html
var newTabHTML []byte

//go:embed pages/search.html
var searchHTML string

//go:embed pages/notfound.html
var notFoundHTML []byte

// SchemeResponse is the body served for one internal page request.
type SchemeResponse struct {
	Data        []byte
	ContentType string
	StatusCode  int
}

// PageHandler produces an internal page for uri.
type PageHandler interface {
	Handle(ctx context.Context, uri string) *SchemeResponse
}

// PageHandlerFunc adapts a function to PageHandler.
type PageHandlerFunc func(ctx context.Context, uri string) *SchemeResponse

func (f PageHandlerFunc) Handle(ctx context.Context, uri string) *SchemeResponse {
	return f(ctx, uri)
}

// SchemeHandler serves pages of the reserved internal scheme.
type SchemeHandler struct {
	mu    sync.RWMutex
	pages map[string]PageHandler
}

// NewSchemeHandler creates a handler with the built-in pages registered.
func NewSchemeHandler() *SchemeHandler {
	h := &SchemeHandler{pages: make(map[string]PageHandler)}
	h.registerDefaults()
	return h
}

// Scheme returns the URI scheme the handler answers.
func (h *SchemeHandler) Scheme() string {
	return url.InternalScheme
}

func (h *SchemeHandler) registerDefaults() {
	newtab := PageHandlerFunc(func(context.Context, string) *SchemeResponse {
		return htmlResponse(newTabHTML, http.StatusOK)
	})
	h.RegisterPage("newtab", newtab)
	h.RegisterPage("", newtab)

	// The tab manager rewrites search URIs before they commit. This page only
	// shows when the engine renders one anyway.
	h.RegisterPage("search", PageHandlerFunc(func(_ context.Context, uri string) *SchemeResponse {
		query, _ := url.ParseInternalSearch(uri)
		body := strings.ReplaceAll(searchHTML, "{{query}}", html.EscapeString(query))
		return htmlResponse([]byte(body), http.StatusOK)
	}))
}

// RegisterPage serves handler for subject://<name>.
func (h *SchemeHandler) RegisterPage(name string, handler PageHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pages[strings.ToLower(name)] = handler
}

// Serve resolves uri to a page. Unknown pages get a 404 body.
func (h *SchemeHandler) Serve(ctx context.Context, uri string) *SchemeResponse {
	page := strings.ToLower(url.InternalPage(uri))

	h.mu.RLock()
	handler, ok := h.pages[page]
	h.mu.RUnlock()

	if !ok {
		logging.FromContext(ctx).Debug().Str("uri", uri).Msg("unknown internal page")
		return htmlResponse(notFoundHTML, http.StatusNotFound)
	}
	return handler.Handle(ctx, uri)
}

func htmlResponse(data []byte, status int) *SchemeResponse {
	return &SchemeResponse{Data: data, ContentType: "text/html", StatusCode: status}
}
