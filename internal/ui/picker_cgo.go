//go:build webkit_cgo

package ui

import (
	"context"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/logging"
)

// fileChooserPicker confirms download destinations with a native save dialog.
type fileChooserPicker struct {
	parent *gtk.Window
}

var _ port.DestinationPicker = (*fileChooserPicker)(nil)

func (p *fileChooserPicker) PickDestination(ctx context.Context, proposedPath string, done func(path string, ok bool)) {
	log := logging.FromContext(ctx)

	chooser := gtk.NewFileChooserNative("Save Download", p.parent, gtk.FileChooserActionSave, "_Save", "_Cancel")
	chooser.SetModal(true)
	chooser.SetCurrentName(filepath.Base(proposedPath))
	if err := chooser.SetCurrentFolder(gio.NewFileForPath(filepath.Dir(proposedPath))); err != nil {
		log.Debug().Err(err).Msg("failed to preselect download folder")
	}

	chooser.ConnectResponse(func(responseID int) {
		defer chooser.Destroy()
		if gtk.ResponseType(responseID) != gtk.ResponseAccept {
			done("", false)
			return
		}
		file := chooser.File()
		if file == nil {
			done("", false)
			return
		}
		done(file.Path(), true)
	})
	chooser.Show()
}
