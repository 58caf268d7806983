//go:build !webkit_cgo

package webkit

import (
	"context"

	"github.com/subjectbrowser/subject/internal/application/port"
)

// Factory is unavailable without the webkit_cgo build tag.
type Factory struct{}

var _ port.WebViewFactory = (*Factory)(nil)

// Available reports whether the engine bindings are compiled in.
func Available() bool { return false }

// NewFactory validates opts and reports ErrUnavailable.
func NewFactory(_ context.Context, opts Options) (*Factory, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return nil, ErrUnavailable
}

func (*Factory) NewWebView(context.Context) (port.WebView, error) {
	return nil, ErrUnavailable
}
