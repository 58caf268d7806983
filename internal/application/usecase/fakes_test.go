package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeWebView behaves like an engine that commits every load immediately.
type fakeWebView struct {
	uri       string
	title     string
	loads     []string
	scripts   []string
	back      int
	forward   int
	reloads   int
	inspector int
	destroyed bool
	loadErr   error
	listener  func(port.WebViewEvent)
}

func (v *fakeWebView) LoadURI(_ context.Context, uri string) error {
	if v.loadErr != nil {
		return v.loadErr
	}
	v.loads = append(v.loads, uri)
	v.uri = uri
	v.emit(port.WebViewEvent{Kind: port.EventLoadStarted, URI: uri})
	v.emit(port.WebViewEvent{Kind: port.EventURIChanged, URI: uri})
	v.emit(port.WebViewEvent{Kind: port.EventLoadFinished, URI: uri})
	return nil
}

func (v *fakeWebView) URI() string   { return v.uri }
func (v *fakeWebView) Title() string { return v.title }

func (v *fakeWebView) GoBack(context.Context) error {
	v.back++
	return nil
}

func (v *fakeWebView) GoForward(context.Context) error {
	v.forward++
	return nil
}

func (v *fakeWebView) Reload(context.Context) error {
	v.reloads++
	return nil
}

func (v *fakeWebView) RunJavaScript(_ context.Context, script, _ string) error {
	v.scripts = append(v.scripts, script)
	return nil
}

func (v *fakeWebView) ShowInspector(context.Context) error {
	v.inspector++
	return nil
}

func (v *fakeWebView) Subscribe(fn func(port.WebViewEvent)) func() {
	v.listener = fn
	return func() { v.listener = nil }
}

func (v *fakeWebView) Destroy() { v.destroyed = true }

func (v *fakeWebView) emit(ev port.WebViewEvent) {
	if v.listener != nil {
		v.listener(ev)
	}
}

type fakeFactory struct {
	views []*fakeWebView
	err   error
}

func (f *fakeFactory) NewWebView(context.Context) (port.WebView, error) {
	if f.err != nil {
		return nil, f.err
	}
	v := &fakeWebView{}
	f.views = append(f.views, v)
	return v, nil
}

// recordingPresenter keeps a model of the tab strip.
type recordingPresenter struct {
	labels   []string
	selected int
	address  string
	errors   []string
}

func (p *recordingPresenter) AddTab(index int, _ port.WebView, label string) {
	p.labels = append(p.labels[:index], append([]string{label}, p.labels[index:]...)...)
}

func (p *recordingPresenter) RemoveTab(index int) {
	p.labels = append(p.labels[:index], p.labels[index+1:]...)
}

func (p *recordingPresenter) SelectTab(index int)             { p.selected = index }
func (p *recordingPresenter) SetTabTitle(index int, t string) { p.labels[index] = t }
func (p *recordingPresenter) SetAddress(uri string)           { p.address = uri }

func (p *recordingPresenter) ReportError(message string, err error) {
	p.errors = append(p.errors, fmt.Sprintf("%s: %v", message, err))
}

// memHistory is an in-memory history repository.
type memHistory struct {
	entries entity.History
	loadErr error
	saves   int
}

func (m *memHistory) Load(context.Context) (entity.History, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make(entity.History, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memHistory) Save(_ context.Context, h entity.History) error {
	m.saves++
	m.entries = h
	return nil
}

var errBoom = errors.New("boom")

func portEvent(uri string) port.WebViewEvent {
	return port.WebViewEvent{Kind: port.EventURIChanged, URI: uri}
}

func titleEvent(title string) port.WebViewEvent {
	return port.WebViewEvent{Kind: port.EventTitleChanged, Title: title}
}
