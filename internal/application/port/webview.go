// Package port defines application-layer interfaces for external capabilities.
// Ports keep the use cases independent of WebKit and GTK.
package port

import "context"

// WebViewEventKind identifies a page event emitted by a WebView.
type WebViewEventKind int

const (
	// EventURIChanged fires whenever the displayed URI changes.
	EventURIChanged WebViewEventKind = iota
	// EventTitleChanged fires when the page title changes.
	EventTitleChanged
	// EventLoadStarted fires when a navigation begins.
	EventLoadStarted
	// EventLoadFinished fires when the page has fully loaded.
	EventLoadFinished
)

// String returns a human-readable representation of the event kind.
func (k WebViewEventKind) String() string {
	switch k {
	case EventURIChanged:
		return "uri-changed"
	case EventTitleChanged:
		return "title-changed"
	case EventLoadStarted:
		return "load-started"
	case EventLoadFinished:
		return "load-finished"
	default:
		return "unknown"
	}
}

// WebViewEvent is a typed notification from a WebView.
// URI is set for EventURIChanged and EventLoadFinished, Title for EventTitleChanged.
type WebViewEvent struct {
	Kind  WebViewEventKind
	URI   string
	Title string
}

// WebView is one engine page view. All methods must be called on the UI thread.
type WebView interface {
	// LoadURI navigates to uri.
	LoadURI(ctx context.Context, uri string) error
	// URI returns the current URI.
	URI() string
	// Title returns the current page title.
	Title() string

	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	Reload(ctx context.Context) error

	// RunJavaScript evaluates script in the page's main world.
	RunJavaScript(ctx context.Context, script, sourceURI string) error
	// ShowInspector opens the engine's developer tools.
	ShowInspector(ctx context.Context) error

	// Subscribe registers fn for every event and returns a function that
	// removes the subscription. Events are delivered on the UI thread.
	Subscribe(fn func(WebViewEvent)) (unsubscribe func())

	// Destroy releases the view. Events are not delivered afterwards.
	Destroy()
}

// WebViewFactory creates views bound to the shared browsing profile.
type WebViewFactory interface {
	NewWebView(ctx context.Context) (WebView, error)
}
