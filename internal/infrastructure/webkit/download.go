package webkit

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/logging"
)

// engineDownload is the part of an engine download the coordinator drives.
type engineDownload interface {
	SetDestination(path string)
	Cancel()
}

// downloadTracker follows one download from destination to completion.
type downloadTracker struct {
	ctx    context.Context
	events port.DownloadEventHandler

	mu          sync.Mutex
	destination string
	failed      bool
	done        bool
}

// decide asks the use case for a destination and applies it to d. A nil use
// case rejects every download.
func decide(ctx context.Context, uc *usecase.PrepareDownloadUseCase, events port.DownloadEventHandler,
	req port.DownloadRequest, d engineDownload,
) *downloadTracker {
	log := logging.FromContext(ctx)
	t := &downloadTracker{ctx: ctx, events: events}

	if uc == nil {
		log.Warn().Str("uri", req.URI).Msg("download rejected, no download handler")
		d.Cancel()
		t.notify(port.DownloadEvent{Type: port.DownloadEventRejected, Filename: req.SuggestedFilename})
		return t
	}

	uc.Execute(ctx, req, func(path string, ok bool) {
		if !ok {
			d.Cancel()
			t.notify(port.DownloadEvent{Type: port.DownloadEventRejected, Filename: req.SuggestedFilename})
			return
		}
		t.mu.Lock()
		t.destination = path
		t.mu.Unlock()

		d.SetDestination(path)
		log.Info().Str("destination", path).Msg("download started")
		t.notify(port.DownloadEvent{
			Type:        port.DownloadEventStarted,
			Filename:    filepath.Base(path),
			Destination: path,
		})
	})
	return t
}

func (t *downloadTracker) fail(err error) {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.failed = true
	t.done = true
	dest := t.destination
	t.mu.Unlock()

	if err == nil {
		err = fmt.Errorf("download failed: %s", filepath.Base(dest))
	}
	logging.FromContext(t.ctx).Warn().Err(err).Str("destination", dest).Msg("download failed")
	t.notify(port.DownloadEvent{
		Type:        port.DownloadEventFailed,
		Filename:    filepath.Base(dest),
		Destination: dest,
		Error:       err,
	})
}

// finish is a no-op after fail; the engine emits finished after failed too.
func (t *downloadTracker) finish() {
	t.mu.Lock()
	if t.done || t.failed || t.destination == "" {
		t.mu.Unlock()
		return
	}
	t.done = true
	dest := t.destination
	t.mu.Unlock()

	logging.FromContext(t.ctx).Info().Str("destination", dest).Msg("download finished")
	t.notify(port.DownloadEvent{
		Type:        port.DownloadEventFinished,
		Filename:    filepath.Base(dest),
		Destination: dest,
	})
}

func (t *downloadTracker) notify(ev port.DownloadEvent) {
	if t.events != nil {
		t.events.OnDownloadEvent(t.ctx, ev)
	}
}
