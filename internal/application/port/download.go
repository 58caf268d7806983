package port

import "context"

// DownloadRequest describes a download the engine wants to store.
type DownloadRequest struct {
	SuggestedFilename string
	MimeType          string
	URI               string
}

// DestinationPicker lets the user confirm or change where a download goes.
// done must be called exactly once; ok=false rejects the download.
type DestinationPicker interface {
	PickDestination(ctx context.Context, proposedPath string, done func(path string, ok bool))
}

// DownloadEventType represents the type of download event.
type DownloadEventType int

const (
	DownloadEventStarted DownloadEventType = iota
	DownloadEventFinished
	DownloadEventFailed
	DownloadEventRejected
)

// DownloadEvent contains information about a download event.
type DownloadEvent struct {
	Type        DownloadEventType
	Filename    string
	Destination string
	Error       error
}

// DownloadEventHandler receives download event notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}
