//go:build webkit_cgo

package ui

import (
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/subjectbrowser/subject/internal/application/port"
)

const (
	tabLabelMaxChars = 24
	statusTimeoutMs  = 5000
)

// widgetView is implemented by engine views that can be placed in GTK.
type widgetView interface {
	Widget() gtk.Widgetter
}

// toolbarActions are the callbacks behind the toolbar buttons.
type toolbarActions struct {
	back, forward, reload, home func()
	bookmark, newTab, devTools  func()
	navigate                    func(text string)
	// closeTab receives the current index of the page whose close button
	// was clicked, or -1 when the page is already gone.
	closeTab func(index int)
}

// mainWindow is the browser window. It implements port.TabPresenter.
type mainWindow struct {
	win      *gtk.ApplicationWindow
	notebook *gtk.Notebook
	address  *gtk.Entry
	status   *gtk.Label
	omnibox  *omniboxPopover

	// titles parallels the notebook pages.
	titles  []*gtk.Label
	actions toolbarActions

	// syncing is set while the presenter drives the notebook, so page
	// switches it causes are not reported back as user selections.
	syncing     bool
	onSelect    func(index int)
	statusTimer coreglib.SourceHandle
}

var _ port.TabPresenter = (*mainWindow)(nil)

func newMainWindow(app *gtk.Application, title string, width, height int, actions toolbarActions) *mainWindow {
	w := &mainWindow{
		win:      gtk.NewApplicationWindow(app),
		notebook: gtk.NewNotebook(),
		address:  gtk.NewEntry(),
		status:   gtk.NewLabel(""),
		actions:  actions,
	}
	w.win.SetTitle(title)
	w.win.SetDefaultSize(width, height)

	w.notebook.SetScrollable(true)
	w.notebook.SetShowBorder(false)
	w.notebook.SetVExpand(true)
	w.notebook.SetHExpand(true)
	w.notebook.ConnectSwitchPage(func(_ gtk.Widgetter, pageNum uint) {
		if w.syncing || w.onSelect == nil {
			return
		}
		w.onSelect(int(pageNum))
	})
	w.notebook.AddController(w.newTabStripGesture())

	w.status.SetXAlign(0)
	w.status.SetEllipsize(pango.EllipsizeEnd)
	w.status.SetVisible(false)
	w.status.AddCSSClass("dim-label")
	w.status.SetMarginStart(6)
	w.status.SetMarginEnd(6)

	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.Append(w.buildToolbar(actions))
	root.Append(w.notebook)
	root.Append(w.status)
	w.win.SetChild(root)

	w.omnibox = newOmniboxPopover(w.address)
	return w
}

func (w *mainWindow) buildToolbar(actions toolbarActions) *gtk.Box {
	bar := gtk.NewBox(gtk.OrientationHorizontal, 4)
	bar.SetMarginTop(4)
	bar.SetMarginBottom(4)
	bar.SetMarginStart(4)
	bar.SetMarginEnd(4)

	button := func(icon, tooltip string, fn func()) *gtk.Button {
		b := gtk.NewButtonFromIconName(icon)
		b.SetTooltipText(tooltip)
		b.SetHasFrame(false)
		b.SetFocusOnClick(false)
		b.ConnectClicked(func() {
			if fn != nil {
				fn()
			}
		})
		return b
	}

	bar.Append(button("go-previous-symbolic", "Back", actions.back))
	bar.Append(button("go-next-symbolic", "Forward", actions.forward))
	bar.Append(button("view-refresh-symbolic", "Reload (Ctrl+R)", actions.reload))
	bar.Append(button("go-home-symbolic", "Home", actions.home))

	w.address.SetHExpand(true)
	w.address.SetPlaceholderText("Search or enter address")
	w.address.SetInputPurpose(gtk.InputPurposeURL)
	w.address.ConnectActivate(func() {
		text := w.omnibox.choice(w.address.Text())
		w.omnibox.hide()
		if actions.navigate != nil {
			actions.navigate(text)
		}
	})
	bar.Append(w.address)

	bar.Append(button("bookmark-new-symbolic", "Bookmark this page (Ctrl+D)", actions.bookmark))
	bar.Append(button("tab-new-symbolic", "New tab (Ctrl+T)", actions.newTab))
	bar.Append(button("utilities-terminal-symbolic", "Developer tools (F12)", actions.devTools))
	return bar
}

// newTabStripGesture opens a tab on a double click in the tab strip.
// Presses inside the visible page are left to the page.
func (w *mainWindow) newTabStripGesture() *gtk.GestureClick {
	gesture := gtk.NewGestureClick()
	gesture.SetButton(1)
	gesture.SetPropagationPhase(gtk.PhaseCapture)
	gesture.ConnectPressed(func(nPress int, x, y float64) {
		if nPress != 2 || w.actions.newTab == nil || w.inCurrentPage(x, y) {
			return
		}
		w.actions.newTab()
	})
	return gesture
}

func (w *mainWindow) inCurrentPage(x, y float64) bool {
	page := w.notebook.NthPage(w.notebook.CurrentPage())
	if page == nil {
		return false
	}
	px, py, ok := w.notebook.TranslateCoordinates(page, x, y)
	return ok && gtk.BaseWidget(page).Contains(px, py)
}

// newTabHeader builds the notebook tab for child: its title and a close button.
func (w *mainWindow) newTabHeader(child gtk.Widgetter, title *gtk.Label) *gtk.Box {
	title.SetEllipsize(pango.EllipsizeEnd)
	title.SetMaxWidthChars(tabLabelMaxChars)
	title.SetHExpand(true)

	closeButton := gtk.NewButtonFromIconName("window-close-symbolic")
	closeButton.SetTooltipText("Close tab (Ctrl+W)")
	closeButton.SetHasFrame(false)
	closeButton.SetFocusOnClick(false)
	closeButton.ConnectClicked(func() {
		// pages shift as other tabs close, so look the index up at click time
		if w.actions.closeTab != nil {
			w.actions.closeTab(w.notebook.PageNum(child))
		}
	})

	header := gtk.NewBox(gtk.OrientationHorizontal, 2)
	header.Append(title)
	header.Append(closeButton)
	return header
}

func (w *mainWindow) AddTab(index int, view port.WebView, label string) {
	wv, ok := view.(widgetView)
	if !ok {
		return
	}
	child := wv.Widget()
	gtk.BaseWidget(child).SetHExpand(true)
	gtk.BaseWidget(child).SetVExpand(true)

	title := gtk.NewLabel(label)
	header := w.newTabHeader(child, title)

	w.syncing = true
	w.notebook.InsertPage(child, header, index)
	w.notebook.SetTabReorderable(child, false)
	w.notebook.SetMenuLabelText(child, label)
	w.syncing = false

	w.titles = append(w.titles, nil)
	copy(w.titles[index+1:], w.titles[index:])
	w.titles[index] = title
}

func (w *mainWindow) RemoveTab(index int) {
	w.syncing = true
	w.notebook.RemovePage(index)
	w.syncing = false

	if index >= 0 && index < len(w.titles) {
		w.titles = append(w.titles[:index], w.titles[index+1:]...)
	}
}

func (w *mainWindow) SelectTab(index int) {
	w.syncing = true
	w.notebook.SetCurrentPage(index)
	w.syncing = false
}

func (w *mainWindow) SetTabTitle(index int, title string) {
	page := w.notebook.NthPage(index)
	if page == nil || index >= len(w.titles) {
		return
	}
	w.titles[index].SetText(title)
	w.notebook.SetMenuLabelText(page, title)
}

func (w *mainWindow) SetAddress(uri string) {
	w.omnibox.suppress(func() { w.address.SetText(uri) })
}

func (w *mainWindow) ReportError(message string, err error) {
	text := message
	if err != nil {
		text += ": " + err.Error()
	}
	w.showStatus(text)
}

// showStatus displays text in the status line for a few seconds.
func (w *mainWindow) showStatus(text string) {
	w.status.SetText(text)
	w.status.SetVisible(true)

	if w.statusTimer != 0 {
		coreglib.SourceRemove(w.statusTimer)
	}
	w.statusTimer = coreglib.TimeoutAdd(statusTimeoutMs, func() bool {
		w.status.SetVisible(false)
		w.statusTimer = 0
		return false
	})
}

// focusAddress selects the address text for typing over it.
func (w *mainWindow) focusAddress() {
	w.address.GrabFocus()
	w.address.SelectRegion(0, -1)
}
