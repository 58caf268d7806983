//go:build webkit_cgo

package ui

import (
	"context"
	"errors"
	"os"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
	"github.com/subjectbrowser/subject/internal/logging"
)

// App wraps the GTK Application and manages the browser lifecycle.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application
	window *mainWindow
	tabs   *usecase.TabManager

	// startErr is set when activation fails, so Run can report it.
	startErr error
	closing  bool

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits.
func (a *App) Run(ctx context.Context) error {
	ctx, a.cancel = context.WithCancelCause(ctx)
	log := logging.FromContext(ctx)

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	if code := a.gtkApp.Run([]string{os.Args[0]}); code != 0 && a.startErr == nil {
		a.startErr = errors.New("gtk application exited with a non-zero status")
	}
	return a.startErr
}

// Quit closes the window from any goroutine. The session is saved on the way out.
func (a *App) Quit() {
	coreglib.IdleAdd(func() bool {
		switch {
		case a.window != nil:
			a.window.win.Close()
		case a.gtkApp != nil:
			a.gtkApp.Quit()
		}
		return false
	})
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	cfg := a.deps.Config

	a.window = newMainWindow(a.gtkApp, cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, toolbarActions{
		back:     func() { a.run(ctx, "back", a.tabs.Back) },
		forward:  func() { a.run(ctx, "forward", a.tabs.Forward) },
		reload:   func() { a.run(ctx, "reload", a.tabs.Reload) },
		home:     func() { a.run(ctx, "home", a.tabs.Home) },
		bookmark: func() { a.bookmarkActive(ctx) },
		newTab:   func() { a.newTab(ctx) },
		devTools: func() { a.run(ctx, "open developer tools", a.tabs.OpenDevTools) },
		navigate: func(text string) { a.navigate(ctx, text) },
		closeTab: func(index int) { a.closeTab(ctx, index) },
	})

	factory, err := a.deps.NewFactory(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	tabDeps := a.deps.TabDeps
	tabDeps.Factory = factory
	tabDeps.Presenter = a.window
	a.tabs = usecase.NewTabManager(ctx, tabDeps)

	a.window.onSelect = func(index int) {
		if err := a.tabs.Activate(ctx, index); err != nil {
			log.Debug().Err(err).Int("index", index).Msg("ignoring tab selection")
		}
	}
	a.wireOmnibox(ctx)
	a.wireShortcuts(ctx)
	a.wireDownloads()
	a.watchConfig(ctx)

	a.window.win.ConnectCloseRequest(func() bool {
		a.shutdownTabs(ctx)
		return false
	})

	restored, err := a.deps.Session.Restore(ctx, a.tabs)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if a.deps.InitialURL != "" {
		a.openInitial(ctx, restored.Home)
	}

	a.window.win.Present()
	log.Info().Int("tabs", a.tabs.Count()).Bool("home", restored.Home).Msg("window ready")
}

// openInitial shows the command-line URL, reusing the tab when only the home page was restored.
func (a *App) openInitial(ctx context.Context, homeOnly bool) {
	if !homeOnly || a.tabs.Count() != 1 {
		if _, err := a.tabs.NewTab(ctx, ""); err != nil {
			a.window.ReportError("Could not open a new tab", err)
			return
		}
	}
	a.navigate(ctx, a.deps.InitialURL)
}

func (a *App) onShutdown(ctx context.Context) {
	logging.FromContext(ctx).Debug().Msg("GTK application shutting down")
	a.shutdownTabs(ctx)
	a.cancel(errors.New("application shutdown"))
}

// shutdownTabs saves the session and tears down every view exactly once.
func (a *App) shutdownTabs(ctx context.Context) {
	if a.closing || a.tabs == nil {
		return
	}
	a.closing = true

	if err := a.deps.Session.Persist(ctx, a.tabs); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to save session")
	}
	a.tabs.CloseAll()
}

func (a *App) fail(ctx context.Context, err error) {
	logging.FromContext(ctx).Error().Err(err).Msg("failed to start browser")
	a.startErr = err
	a.gtkApp.Quit()
}

func (a *App) run(ctx context.Context, name string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("action", name).Msg("action failed")
		a.window.ReportError("Could not "+name, err)
	}
}

func (a *App) navigate(ctx context.Context, text string) {
	if err := a.tabs.Navigate(ctx, text); err != nil {
		a.window.ReportError("Could not load page", err)
	}
}

func (a *App) newTab(ctx context.Context) {
	if _, err := a.tabs.NewTab(ctx, ""); err != nil {
		a.window.ReportError("Could not open a new tab", err)
		return
	}
	a.window.focusAddress()
}

func (a *App) closeActive(ctx context.Context) {
	a.closeTab(ctx, a.tabs.ActiveIndex())
}

func (a *App) closeTab(ctx context.Context, index int) {
	wasLast, err := closeTabAt(ctx, a.tabs, index)
	if err != nil {
		a.window.ReportError("Could not close tab", err)
		return
	}
	if wasLast {
		// Closing the last tab closes the window; the session keeps the last open set.
		a.window.win.Close()
	}
}

func (a *App) bookmarkActive(ctx context.Context) {
	if a.deps.Bookmarks == nil {
		return
	}
	bm, ok, err := a.deps.Bookmarks.AddActive(ctx, a.tabs)
	switch {
	case err != nil:
		a.window.ReportError("Bookmark could not be saved", err)
	case ok:
		a.window.showStatus("Bookmarked " + bm.Title)
	}
}

func (a *App) wireOmnibox(ctx context.Context) {
	o := a.window.omnibox
	o.onActivate = func(url string) { a.navigate(ctx, url) }
	if a.deps.Autocomplete == nil {
		return
	}
	o.query = func(text string) {
		if text == "" {
			o.hide()
			return
		}
		suggestions, err := a.deps.Autocomplete.Suggest(ctx, text)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("suggestions unavailable")
			o.hide()
			return
		}
		o.show(suggestions)
	}
}

func (a *App) wireShortcuts(ctx context.Context) {
	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		action := MatchShortcut(keyval, Modifiers{
			Ctrl:  state.Has(gdk.ControlMask),
			Alt:   state.Has(gdk.AltMask),
			Shift: state.Has(gdk.ShiftMask),
		})
		if action == ActionNone {
			return false
		}
		logging.FromContext(ctx).Debug().Str("action", action.String()).Msg("shortcut")
		a.dispatch(ctx, action)
		return true
	})
	a.window.win.AddController(keys)
}

func (a *App) dispatch(ctx context.Context, action Action) {
	switch action {
	case ActionNewTab:
		a.newTab(ctx)
	case ActionCloseTab:
		a.closeActive(ctx)
	case ActionFocusAddress:
		a.window.focusAddress()
	case ActionReload:
		a.run(ctx, "reload", a.tabs.Reload)
	case ActionBookmark:
		a.bookmarkActive(ctx)
	case ActionDevTools:
		a.run(ctx, "open developer tools", a.tabs.OpenDevTools)
	case ActionBack:
		a.run(ctx, "go back", a.tabs.Back)
	case ActionForward:
		a.run(ctx, "go forward", a.tabs.Forward)
	case ActionNextTab, ActionPrevTab:
		n := a.tabs.Count()
		if n < 2 {
			return
		}
		step := 1
		if action == ActionPrevTab {
			step = n - 1
		}
		_ = a.tabs.Activate(ctx, (a.tabs.ActiveIndex()+step)%n)
	}
}

func (a *App) wireDownloads() {
	if a.deps.Downloads != nil {
		a.deps.Downloads.SetPicker(&fileChooserPicker{parent: &a.window.win.Window})
	}
}

// watchConfig hops reloads from the watcher goroutine onto the main loop.
func (a *App) watchConfig(ctx context.Context) {
	mgr := a.deps.ConfigManager
	if mgr == nil {
		return
	}
	mgr.OnConfigChange(func(cfg *config.Config) {
		coreglib.IdleAdd(func() bool {
			applyConfig(ctx, cfg, a.deps.TabDeps.Navigate, a.deps.Permissions)
			return false
		})
	})
	if err := mgr.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
	}
}
