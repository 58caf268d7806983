package usecase

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/domain/download"
	"github.com/subjectbrowser/subject/internal/logging"
)

// PrepareDownloadOutput contains the resolved download destination.
type PrepareDownloadOutput struct {
	// Filename is the sanitized, unique filename.
	Filename string
	// DestinationPath is the full path proposed for the download.
	DestinationPath string
}

// PrepareDownloadUseCase decides where engine downloads are written.
type PrepareDownloadUseCase struct {
	fs  port.FileSystem
	dir string
	ask bool

	pickerMu sync.RWMutex
	picker   port.DestinationPicker
}

// NewPrepareDownloadUseCase creates a download use case storing into dir.
// When ask is true and a picker is set, the user confirms every destination.
// If fs is nil, filename deduplication is disabled.
func NewPrepareDownloadUseCase(fs port.FileSystem, dir string, ask bool) *PrepareDownloadUseCase {
	return &PrepareDownloadUseCase{fs: fs, dir: dir, ask: ask}
}

// SetPicker sets the destination picker once the window exists.
func (u *PrepareDownloadUseCase) SetPicker(picker port.DestinationPicker) {
	u.pickerMu.Lock()
	defer u.pickerMu.Unlock()
	u.picker = picker
}

func (u *PrepareDownloadUseCase) getPicker() port.DestinationPicker {
	u.pickerMu.RLock()
	defer u.pickerMu.RUnlock()
	return u.picker
}

// Propose resolves the sanitized destination for req without asking anyone.
func (u *PrepareDownloadUseCase) Propose(ctx context.Context, req port.DownloadRequest) *PrepareDownloadOutput {
	name := req.SuggestedFilename
	if name == "" && req.URI != "" {
		name = download.FilenameFromURI(req.URI)
	}
	safeName := download.WithExtension(name, req.MimeType)

	if u.fs != nil {
		safeName = download.UniqueFilename(u.dir, safeName, func(path string) bool {
			exists, err := u.fs.Exists(ctx, path)
			return err == nil && exists
		})
	}

	destPath := filepath.Join(u.dir, safeName)
	logging.FromContext(ctx).Debug().
		Str("suggested", req.SuggestedFilename).
		Str("sanitized", safeName).
		Str("dest_path", destPath).
		Msg("prepared download destination")

	return &PrepareDownloadOutput{Filename: safeName, DestinationPath: destPath}
}

// Execute resolves a destination for req and reports it through done exactly once.
// ok=false means the download must be rejected.
func (u *PrepareDownloadUseCase) Execute(ctx context.Context, req port.DownloadRequest, done func(path string, ok bool)) {
	log := logging.FromContext(ctx)

	if u.dir == "" {
		log.Warn().Msg("no download directory configured, rejecting download")
		done("", false)
		return
	}

	if u.fs != nil {
		if err := u.fs.MkdirAll(ctx, u.dir); err != nil {
			log.Error().Err(err).Str("dir", u.dir).Msg("failed to create download directory")
			done("", false)
			return
		}
	}

	proposed := u.Propose(ctx, req)

	picker := u.getPicker()
	if !u.ask || picker == nil {
		done(proposed.DestinationPath, true)
		return
	}

	picker.PickDestination(ctx, proposed.DestinationPath, func(path string, ok bool) {
		if !ok || path == "" {
			log.Info().Str("proposed", proposed.DestinationPath).Msg("download rejected by user")
			done("", false)
			return
		}
		done(path, true)
	})
}
