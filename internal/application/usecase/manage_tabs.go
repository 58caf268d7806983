package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/logging"
)

// ErrTabIndexOutOfRange is returned for an index that names no open tab.
var ErrTabIndexOutOfRange = errors.New("tab index out of range")

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// TabManagerDeps holds the collaborators of a TabManager.
type TabManagerDeps struct {
	Factory   port.WebViewFactory
	Presenter port.TabPresenter
	Navigate  *NavigateUseCase
	History   *ManageHistoryUseCase
	Inject    *InjectExtensionsUseCase
	IDGen     IDGenerator
}

type tabSlot struct {
	tab         *entity.Tab
	view        port.WebView
	unsubscribe func()
}

// TabManager owns the open tabs and which one is active.
// State is explicit and never read back from widgets.
// All methods must be called from the UI thread.
type TabManager struct {
	ctx       context.Context
	factory   port.WebViewFactory
	presenter port.TabPresenter
	navigate  *NavigateUseCase
	history   *ManageHistoryUseCase
	inject    *InjectExtensionsUseCase
	idGen     IDGenerator

	tabs   []*tabSlot
	active int
}

// NewTabManager creates a tab manager. ctx carries the logger used by engine event
// handlers, which run outside any caller context.
func NewTabManager(ctx context.Context, deps TabManagerDeps) *TabManager {
	m := &TabManager{
		ctx:       ctx,
		factory:   deps.Factory,
		presenter: deps.Presenter,
		navigate:  deps.Navigate,
		history:   deps.History,
		inject:    deps.Inject,
		idGen:     deps.IDGen,
		active:    -1,
	}
	if m.presenter == nil {
		m.presenter = port.NopPresenter{}
	}
	if m.navigate == nil {
		m.navigate = NewNavigateUseCase("", "")
	}
	if m.idGen == nil {
		m.idGen = uuid.NewString
	}
	return m
}

// SetPresenter attaches the toolkit presenter once the window exists.
func (m *TabManager) SetPresenter(p port.TabPresenter) {
	if p == nil {
		p = port.NopPresenter{}
	}
	m.presenter = p
}

// Count returns the number of open tabs.
func (m *TabManager) Count() int {
	return len(m.tabs)
}

// ActiveIndex returns the index of the active tab, or -1 when none is open.
func (m *TabManager) ActiveIndex() int {
	return m.active
}

// ActiveTab returns a snapshot of the active tab, or nil.
func (m *TabManager) ActiveTab() *entity.Tab {
	slot := m.activeSlot()
	if slot == nil {
		return nil
	}
	tab := *slot.tab
	return &tab
}

// Tabs returns snapshots of every open tab in order.
func (m *TabManager) Tabs() []entity.Tab {
	out := make([]entity.Tab, len(m.tabs))
	for i, s := range m.tabs {
		out[i] = *s.tab
	}
	return out
}

// URLs returns the current URL of every open tab in order.
func (m *TabManager) URLs() []string {
	urls := make([]string, len(m.tabs))
	for i, s := range m.tabs {
		urls[i] = s.tab.URL
	}
	return urls
}

// View returns the engine view of the tab at index.
func (m *TabManager) View(index int) (port.WebView, bool) {
	if index < 0 || index >= len(m.tabs) {
		return nil, false
	}
	return m.tabs[index].view, true
}

// NewTab opens a tab on url, or on the home page when url is empty, and activates it.
func (m *TabManager) NewTab(ctx context.Context, url string) (*entity.Tab, error) {
	target := url
	if target == "" {
		target = m.navigate.HomePage()
	}

	view, err := m.factory.NewWebView(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create web view: %w", err)
	}

	tab := entity.NewTab(entity.TabID(m.idGen()), target)
	slot := &tabSlot{tab: tab, view: view}
	index := len(m.tabs)
	m.tabs = append(m.tabs, slot)

	id := tab.ID
	slot.unsubscribe = view.Subscribe(func(ev port.WebViewEvent) {
		m.handleEvent(id, ev)
	})

	m.presenter.AddTab(index, view, tab.DisplayTitle())
	m.activate(index)

	log := logging.FromContext(ctx).With().Str("tab_id", string(id)).Logger()
	log.Info().
		Int("index", index).
		Str("url", logging.TruncateURL(target, 120)).
		Msg("tab opened")

	if err := view.LoadURI(ctx, target); err != nil {
		log.Warn().Err(err).Msg("initial load failed")
		m.presenter.ReportError("Failed to load "+target, err)
	}

	snapshot := *tab
	return &snapshot, nil
}

// CloseTab closes the tab at index. wasLast is true when no tab remains.
// Closing the active tab activates the tab that takes its place, or the new
// last tab when the closed one was rightmost.
func (m *TabManager) CloseTab(ctx context.Context, index int) (wasLast bool, err error) {
	if index < 0 || index >= len(m.tabs) {
		return false, fmt.Errorf("%w: %d", ErrTabIndexOutOfRange, index)
	}

	slot := m.tabs[index]
	if slot.unsubscribe != nil {
		slot.unsubscribe()
	}
	slot.tab.State = entity.TabClosed

	m.tabs = append(m.tabs[:index], m.tabs[index+1:]...)
	m.presenter.RemoveTab(index)
	slot.view.Destroy()

	logging.FromContext(ctx).Info().
		Str("tab_id", string(slot.tab.ID)).
		Int("index", index).
		Int("remaining", len(m.tabs)).
		Msg("tab closed")

	if len(m.tabs) == 0 {
		m.active = -1
		return true, nil
	}

	next := m.active
	switch {
	case index < m.active:
		next = m.active - 1
	case index == m.active && index >= len(m.tabs):
		next = len(m.tabs) - 1
	}
	m.activate(next)
	return false, nil
}

// CloseActive closes the active tab. Without an active tab it is a no-op.
func (m *TabManager) CloseActive(ctx context.Context) (wasLast bool, err error) {
	if m.active < 0 {
		return false, nil
	}
	return m.CloseTab(ctx, m.active)
}

// Activate makes the tab at index active and syncs the address bar.
func (m *TabManager) Activate(ctx context.Context, index int) error {
	if index < 0 || index >= len(m.tabs) {
		return fmt.Errorf("%w: %d", ErrTabIndexOutOfRange, index)
	}
	if index == m.active {
		return nil
	}
	m.activate(index)
	logging.FromContext(ctx).Debug().Int("index", index).Msg("tab activated")
	return nil
}

// Navigate resolves text and loads it in the active tab.
func (m *TabManager) Navigate(ctx context.Context, text string) error {
	slot := m.activeSlot()
	if slot == nil {
		return nil
	}
	target := m.navigate.Resolve(ctx, text)
	if target == "" {
		return nil
	}
	if err := slot.view.LoadURI(ctx, target); err != nil {
		return fmt.Errorf("failed to load %s: %w", target, err)
	}
	return nil
}

// Home loads the home page in the active tab.
func (m *TabManager) Home(ctx context.Context) error {
	slot := m.activeSlot()
	if slot == nil {
		return nil
	}
	return slot.view.LoadURI(ctx, m.navigate.HomePage())
}

// Back navigates the active tab back.
func (m *TabManager) Back(ctx context.Context) error {
	if slot := m.activeSlot(); slot != nil {
		return slot.view.GoBack(ctx)
	}
	return nil
}

// Forward navigates the active tab forward.
func (m *TabManager) Forward(ctx context.Context) error {
	if slot := m.activeSlot(); slot != nil {
		return slot.view.GoForward(ctx)
	}
	return nil
}

// Reload reloads the active tab.
func (m *TabManager) Reload(ctx context.Context) error {
	if slot := m.activeSlot(); slot != nil {
		return slot.view.Reload(ctx)
	}
	return nil
}

// OpenDevTools shows the inspector of the active tab.
func (m *TabManager) OpenDevTools(ctx context.Context) error {
	if slot := m.activeSlot(); slot != nil {
		return slot.view.ShowInspector(ctx)
	}
	return nil
}

// CloseAll destroys every view without touching the presenter. Used at shutdown
// after the session has been persisted.
func (m *TabManager) CloseAll() {
	for _, s := range m.tabs {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		s.tab.State = entity.TabClosed
		s.view.Destroy()
	}
	m.tabs = nil
	m.active = -1
}

func (m *TabManager) activeSlot() *tabSlot {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

func (m *TabManager) activate(index int) {
	m.active = index
	m.presenter.SelectTab(index)
	m.presenter.SetAddress(m.addressFor(m.tabs[index].tab.URL))
}

// addressFor hides the home page URL from the address bar.
func (m *TabManager) addressFor(uri string) string {
	if uri == m.navigate.HomePage() {
		return ""
	}
	return uri
}

func (m *TabManager) indexOf(id entity.TabID) int {
	for i, s := range m.tabs {
		if s.tab.ID == id {
			return i
		}
	}
	return -1
}

func (m *TabManager) handleEvent(id entity.TabID, ev port.WebViewEvent) {
	index := m.indexOf(id)
	ctx := logging.WithTabID(m.ctx, string(id))
	log := logging.FromContext(ctx)

	if index < 0 {
		log.Debug().Str("event", ev.Kind.String()).Msg("dropping event from closed tab")
		return
	}
	slot := m.tabs[index]

	switch ev.Kind {
	case port.EventURIChanged:
		m.onURIChanged(ctx, index, slot, ev.URI)
	case port.EventTitleChanged:
		slot.tab.Title = ev.Title
		m.presenter.SetTabTitle(index, slot.tab.DisplayTitle())
	case port.EventLoadStarted:
		slot.tab.State = entity.TabLoading
	case port.EventLoadFinished:
		slot.tab.State = entity.TabLoaded
		m.onLoadFinished(ctx, slot)
	}
}

func (m *TabManager) onURIChanged(ctx context.Context, index int, slot *tabSlot, uri string) {
	if uri == "" {
		return
	}
	log := logging.FromContext(ctx)

	ic := m.navigate.Intercept(ctx, uri)
	if ic.Rewrite != "" {
		if err := slot.view.LoadURI(ctx, ic.Rewrite); err != nil {
			log.Warn().Err(err).Str("query", ic.Query).Msg("search rewrite failed")
			m.presenter.ReportError("Search failed", err)
		}
		return
	}

	slot.tab.URL = uri
	if slot.tab.Title == "" {
		m.presenter.SetTabTitle(index, slot.tab.DisplayTitle())
	}
	if index == m.active {
		m.presenter.SetAddress(m.addressFor(uri))
	}

	if ic.Internal || m.history == nil {
		return
	}
	if err := m.history.Record(ctx, uri); err != nil {
		log.Error().Err(err).Msg("failed to record history")
		m.presenter.ReportError("History could not be saved", err)
	}
}

func (m *TabManager) onLoadFinished(ctx context.Context, slot *tabSlot) {
	if m.inject == nil {
		return
	}
	if _, err := m.inject.Execute(ctx, slot.view); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("extension injection failed")
		m.presenter.ReportError("Extension injection failed", err)
	}
}
