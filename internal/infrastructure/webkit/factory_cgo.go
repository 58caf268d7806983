//go:build webkit_cgo

package webkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/rs/zerolog"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/logging"
)

const cookiesFile = "cookies.db"

// Factory creates views sharing one persistent network session.
// It must be created on the GTK main thread before any view.
type Factory struct {
	opts    Options
	session *webkit.NetworkSession
	logger  zerolog.Logger
}

var _ port.WebViewFactory = (*Factory)(nil)

// Available reports whether the engine bindings are compiled in.
func Available() bool { return true }

// NewFactory creates the persistent network session, registers the internal
// scheme and hooks downloads.
func NewFactory(ctx context.Context, opts Options) (*Factory, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-factory").Logger()

	if err := opts.validate(); err != nil {
		return nil, err
	}
	for _, dir := range []string{opts.DataDir, opts.CacheDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	session := webkit.NewNetworkSession(opts.DataDir, opts.CacheDir)
	if session == nil {
		return nil, fmt.Errorf("failed to create network session")
	}
	if session.IsEphemeral() {
		return nil, fmt.Errorf("network session is ephemeral despite data directories")
	}

	cookiePath := filepath.Join(opts.DataDir, cookiesFile)
	if cm := session.CookieManager(); cm != nil {
		cm.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
		cm.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	}
	session.SetPersistentCredentialStorageEnabled(true)

	f := &Factory{opts: opts, session: session, logger: log}
	f.registerScheme(ctx)
	session.ConnectDownloadStarted(func(download *webkit.Download) {
		f.handleDownload(ctx, download)
	})

	log.Info().
		Str("data_dir", opts.DataDir).
		Str("cache_dir", opts.CacheDir).
		Str("cookies", cookiePath).
		Msg("network session ready")
	return f, nil
}

// NewWebView creates a view bound to the factory's network session.
func (f *Factory) NewWebView(ctx context.Context) (port.WebView, error) {
	inner := f.newInner()
	if inner == nil {
		return nil, fmt.Errorf("failed to create webview")
	}

	if settings := inner.Settings(); settings != nil {
		settings.SetEnableDeveloperExtras(f.opts.EnableDevTools)
		settings.SetEnableJavascript(true)
	}

	wv := newWebView(ctx, inner, f.opts.EnableDevTools)
	wv.handlePermissions(ctx, f.opts.Permissions)
	f.logger.Debug().Msg("webview created")
	return wv, nil
}

// newInner constructs the view with network-session set, which is construct-only.
func (f *Factory) newInner() *webkit.WebView {
	obj := coreglib.NewObjectWithProperties(webkit.GTypeWebView, map[string]any{
		"network-session": f.session,
	})
	if obj != nil {
		if view, ok := obj.Cast().(*webkit.WebView); ok {
			return view
		}
	}
	f.logger.Warn().Msg("falling back to the default network session")
	return webkit.NewWebView()
}

func (f *Factory) registerScheme(ctx context.Context) {
	handler := f.opts.Scheme
	webContext := webkit.WebContextGetDefault()
	webContext.RegisterURIScheme(handler.Scheme(), func(req *webkit.URISchemeRequest) {
		resp := handler.Serve(ctx, req.URI())
		stream := gio.NewMemoryInputStreamFromBytes(glib.NewBytes(resp.Data))
		req.Finish(stream, int64(len(resp.Data)), resp.ContentType)
	})

	if sm := webContext.SecurityManager(); sm != nil {
		sm.RegisterURISchemeAsSecure(handler.Scheme())
	}
}

func (f *Factory) handleDownload(ctx context.Context, download *webkit.Download) {
	var tracker *downloadTracker

	download.ConnectDecideDestination(func(suggestedFilename string) bool {
		req := port.DownloadRequest{SuggestedFilename: suggestedFilename}
		if resp := download.Response(); resp != nil {
			req.MimeType = resp.MIMEType()
			req.URI = resp.URI()
		}
		// Returning true keeps the download pending until the destination
		// is set, which the file chooser may do later.
		tracker = decide(ctx, f.opts.Downloads, f.opts.DownloadEvents, req, download)
		return true
	})
	download.ConnectFailed(func(err error) {
		if tracker != nil {
			tracker.fail(err)
		}
	})
	download.ConnectFinished(func() {
		if tracker != nil {
			tracker.finish()
		}
	})
}
