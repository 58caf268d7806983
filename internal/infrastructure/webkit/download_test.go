package webkit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/infrastructure/filesystem"
)

type fakeDownload struct {
	destination string
	cancelled   bool
}

func (d *fakeDownload) SetDestination(path string) { d.destination = path }
func (d *fakeDownload) Cancel()                    { d.cancelled = true }

type recordedEvents struct {
	events []port.DownloadEvent
}

func (r *recordedEvents) OnDownloadEvent(_ context.Context, ev port.DownloadEvent) {
	r.events = append(r.events, ev)
}

func (r *recordedEvents) types() []port.DownloadEventType {
	out := make([]port.DownloadEventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

func TestDecide_SetsDestinationAndFinishes(t *testing.T) {
	dir := t.TempDir()
	uc := usecase.NewPrepareDownloadUseCase(filesystem.New(), dir, false)
	events := &recordedEvents{}
	d := &fakeDownload{}

	tracker := decide(context.Background(), uc, events, port.DownloadRequest{
		SuggestedFilename: "../report",
		MimeType:          "application/pdf",
	}, d)

	assert.Equal(t, filepath.Join(dir, "report.pdf"), d.destination)
	assert.False(t, d.cancelled)

	tracker.finish()
	tracker.finish()
	assert.Equal(t, []port.DownloadEventType{port.DownloadEventStarted, port.DownloadEventFinished}, events.types())
	assert.Equal(t, "report.pdf", events.events[1].Filename)
}

func TestDecide_NoUseCaseRejects(t *testing.T) {
	events := &recordedEvents{}
	d := &fakeDownload{}

	tracker := decide(context.Background(), nil, events, port.DownloadRequest{SuggestedFilename: "a.txt"}, d)
	tracker.finish()

	assert.True(t, d.cancelled)
	assert.Empty(t, d.destination)
	assert.Equal(t, []port.DownloadEventType{port.DownloadEventRejected}, events.types())
}

func TestDecide_NoDirectoryRejects(t *testing.T) {
	uc := usecase.NewPrepareDownloadUseCase(nil, "", false)
	d := &fakeDownload{}

	decide(context.Background(), uc, nil, port.DownloadRequest{SuggestedFilename: "a.txt"}, d)
	assert.True(t, d.cancelled)
}

func TestTracker_FailSuppressesFinish(t *testing.T) {
	uc := usecase.NewPrepareDownloadUseCase(nil, t.TempDir(), false)
	events := &recordedEvents{}
	d := &fakeDownload{}

	tracker := decide(context.Background(), uc, events, port.DownloadRequest{SuggestedFilename: "a.txt"}, d)
	tracker.fail(errors.New("network down"))
	tracker.finish()

	require.Len(t, events.events, 2)
	assert.Equal(t, port.DownloadEventFailed, events.events[1].Type)
	assert.EqualError(t, events.events[1].Error, "network down")
}
