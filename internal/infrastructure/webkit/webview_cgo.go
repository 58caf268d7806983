//go:build webkit_cgo

package webkit

import (
	"context"
	"errors"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/logging"
)

// ErrWebViewDestroyed is returned by calls on a destroyed view.
var ErrWebViewDestroyed = errors.New("webview destroyed")

// WebView wraps a WebKitGTK view and turns its signals into port events.
type WebView struct {
	inner    *webkit.WebView
	devtools bool
	events   *eventHub

	mu        sync.Mutex
	handles   []coreglib.SignalHandle
	destroyed bool
}

var _ port.WebView = (*WebView)(nil)

func newWebView(ctx context.Context, inner *webkit.WebView, devtools bool) *WebView {
	wv := &WebView{inner: inner, devtools: devtools, events: newEventHub()}
	wv.connectSignals(ctx)
	return wv
}

func (w *WebView) connectSignals(ctx context.Context) {
	log := logging.FromContext(ctx)

	w.track(w.inner.NotifyProperty("uri", func() {
		w.events.emit(port.WebViewEvent{Kind: port.EventURIChanged, URI: w.inner.URI()})
	}))
	w.track(w.inner.NotifyProperty("title", func() {
		w.events.emit(port.WebViewEvent{Kind: port.EventTitleChanged, Title: w.inner.Title()})
	}))
	w.track(w.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadStarted:
			w.events.emit(port.WebViewEvent{Kind: port.EventLoadStarted, URI: w.inner.URI()})
		case webkit.LoadFinished:
			w.events.emit(port.WebViewEvent{Kind: port.EventLoadFinished, URI: w.inner.URI()})
		}
	}))
	w.track(w.inner.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		log.Warn().Str("reason", reason.String()).Str("uri", w.inner.URI()).Msg("web process terminated")
	}))
}

func (w *WebView) track(h coreglib.SignalHandle) {
	w.mu.Lock()
	w.handles = append(w.handles, h)
	w.mu.Unlock()
}

func (w *WebView) alive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.destroyed
}

// Widget returns the GTK widget to place in the tab strip.
func (w *WebView) Widget() gtk.Widgetter {
	return w.inner
}

func (w *WebView) LoadURI(ctx context.Context, uri string) error {
	if !w.alive() {
		return ErrWebViewDestroyed
	}
	logging.FromContext(ctx).Debug().Str("uri", logging.TruncateURL(uri, 80)).Msg("loading")
	w.inner.LoadURI(uri)
	return nil
}

func (w *WebView) URI() string {
	if !w.alive() {
		return ""
	}
	return w.inner.URI()
}

func (w *WebView) Title() string {
	if !w.alive() {
		return ""
	}
	return w.inner.Title()
}

func (w *WebView) GoBack(context.Context) error {
	if !w.alive() {
		return ErrWebViewDestroyed
	}
	if w.inner.CanGoBack() {
		w.inner.GoBack()
	}
	return nil
}

func (w *WebView) GoForward(context.Context) error {
	if !w.alive() {
		return ErrWebViewDestroyed
	}
	if w.inner.CanGoForward() {
		w.inner.GoForward()
	}
	return nil
}

func (w *WebView) Reload(context.Context) error {
	if !w.alive() {
		return ErrWebViewDestroyed
	}
	w.inner.Reload()
	return nil
}

// RunJavaScript evaluates script asynchronously in the main world. Script
// exceptions are logged and never returned.
func (w *WebView) RunJavaScript(ctx context.Context, script, sourceURI string) error {
	if !w.alive() {
		return ErrWebViewDestroyed
	}
	log := logging.FromContext(ctx)
	w.inner.EvaluateJavascript(ctx, script, -1, "", sourceURI, func(res gio.AsyncResulter) {
		if _, err := w.inner.EvaluateJavascriptFinish(res); err != nil {
			log.Debug().Err(err).Str("source", sourceURI).Msg("script raised an error")
		}
	})
	return nil
}

func (w *WebView) ShowInspector(ctx context.Context) error {
	if !w.alive() {
		return ErrWebViewDestroyed
	}
	if !w.devtools {
		logging.FromContext(ctx).Debug().Msg("devtools disabled in config")
		return nil
	}
	if inspector := w.inner.Inspector(); inspector != nil {
		inspector.Show()
	}
	return nil
}

func (w *WebView) Subscribe(fn func(port.WebViewEvent)) func() {
	return w.events.subscribe(fn)
}

// Destroy disconnects every signal and stops the page.
func (w *WebView) Destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	handles := w.handles
	w.handles = nil
	w.mu.Unlock()

	w.events.close()
	for _, h := range handles {
		w.inner.HandlerDisconnect(h)
	}
	w.inner.StopLoading()
}

// handlePermissions answers permission-request with the policy in uc.
// A nil use case grants everything.
func (w *WebView) handlePermissions(ctx context.Context, uc *usecase.HandlePermissionUseCase) {
	w.track(w.inner.ConnectPermissionRequest(func(request webkit.PermissionRequester) bool {
		kind := permissionKind(request)
		if uc == nil {
			request.Allow()
			return true
		}
		uc.Handle(ctx, w.inner.URI(), kind, usecase.PermissionCallback{
			Allow: request.Allow,
			Deny:  request.Deny,
		})
		return true
	}))
}

func permissionKind(request webkit.PermissionRequester) entity.PermissionType {
	switch request.(type) {
	case *webkit.GeolocationPermissionRequest:
		return entity.PermissionGeolocation
	case *webkit.NotificationPermissionRequest:
		return entity.PermissionNotifications
	case *webkit.UserMediaPermissionRequest:
		return entity.PermissionMedia
	case *webkit.ClipboardPermissionRequest:
		return entity.PermissionClipboard
	case *webkit.PointerLockPermissionRequest:
		return entity.PermissionPointerLock
	case *webkit.WebsiteDataAccessPermissionRequest:
		return entity.PermissionDataAccess
	default:
		return entity.PermissionOther
	}
}
