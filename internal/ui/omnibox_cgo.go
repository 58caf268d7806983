//go:build webkit_cgo

package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
)

// omniboxPopover shows suggestions in a popover anchored to the address entry.
type omniboxPopover struct {
	entry   *gtk.Entry
	popover *gtk.Popover
	list    *gtk.ListBox
	state   *omniboxState

	// query is called on every user edit. Programmatic edits are suppressed.
	query      func(text string)
	muted      bool
	onActivate func(url string)
}

func newOmniboxPopover(entry *gtk.Entry) *omniboxPopover {
	o := &omniboxPopover{
		entry:   entry,
		popover: gtk.NewPopover(),
		list:    gtk.NewListBox(),
		state:   newOmniboxState(),
	}

	o.list.SetSelectionMode(gtk.SelectionBrowse)
	o.list.ConnectRowActivated(func(row *gtk.ListBoxRow) {
		idx := row.Index()
		if idx < 0 || idx >= len(o.state.items) {
			return
		}
		url := o.state.items[idx].URL
		o.hide()
		if o.onActivate != nil {
			o.onActivate(url)
		}
	})

	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroller.SetPropagateNaturalHeight(true)
	scroller.SetMaxContentHeight(360)
	scroller.SetChild(o.list)

	o.popover.SetChild(scroller)
	o.popover.SetParent(entry)
	o.popover.SetAutohide(false)
	o.popover.SetHasArrow(false)
	o.popover.SetPosition(gtk.PosBottom)

	entry.ConnectChanged(func() {
		if o.muted || o.query == nil {
			return
		}
		o.query(entry.Text())
	})

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if !o.state.visible() {
			return false
		}
		switch keyval {
		case gdkKeyDown:
			o.selectIndex(o.state.move(1))
			return true
		case gdkKeyUp:
			o.selectIndex(o.state.move(-1))
			return true
		case gdkKeyEscape:
			o.hide()
			return true
		}
		return false
	})
	entry.AddController(keys)
	return o
}

// show replaces the rows with items and pops the list up, or hides it when empty.
func (o *omniboxPopover) show(items []autocomplete.Suggestion) {
	o.state.set(items)
	o.clearRows()
	if !o.state.visible() {
		o.popover.Popdown()
		return
	}

	for _, s := range items {
		o.list.Append(suggestionRow(s))
	}
	o.popover.SetSizeRequest(o.entry.AllocatedWidth(), -1)
	o.popover.Popup()
}

func (o *omniboxPopover) hide() {
	o.state.clear()
	o.clearRows()
	o.popover.Popdown()
}

func (o *omniboxPopover) clearRows() {
	for child := o.list.FirstChild(); child != nil; child = o.list.FirstChild() {
		o.list.Remove(child)
	}
}

func (o *omniboxPopover) selectIndex(idx int) {
	if idx < 0 {
		o.list.UnselectAll()
		return
	}
	if row := o.list.RowAtIndex(idx); row != nil {
		o.list.SelectRow(row)
	}
}

func (o *omniboxPopover) choice(typed string) string {
	return o.state.choice(typed)
}

// suppress runs fn without triggering a suggestion query.
func (o *omniboxPopover) suppress(fn func()) {
	o.muted = true
	defer func() { o.muted = false }()
	fn()
}

func suggestionRow(s autocomplete.Suggestion) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 8)
	row.SetMarginTop(2)
	row.SetMarginBottom(2)
	row.SetMarginStart(6)
	row.SetMarginEnd(6)

	icon := "document-open-recent-symbolic"
	if s.Source == autocomplete.SourceBookmark {
		icon = "starred-symbolic"
	}
	row.Append(gtk.NewImageFromIconName(icon))

	text := s.URL
	if s.Title != "" {
		text = s.Title + "  " + s.URL
	}
	label := gtk.NewLabel(text)
	label.SetXAlign(0)
	label.SetHExpand(true)
	label.SetEllipsize(pango.EllipsizeMiddle)
	row.Append(label)
	return row
}
