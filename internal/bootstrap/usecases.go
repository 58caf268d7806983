package bootstrap

import (
	"context"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
	"github.com/subjectbrowser/subject/internal/infrastructure/extensions"
	"github.com/subjectbrowser/subject/internal/infrastructure/filesystem"
	"github.com/subjectbrowser/subject/internal/infrastructure/webkit"
	"github.com/subjectbrowser/subject/internal/logging"
)

// UseCases groups application layer use case implementations.
type UseCases struct {
	Navigate     *usecase.NavigateUseCase
	History      *usecase.ManageHistoryUseCase
	Bookmarks    *usecase.ManageBookmarksUseCase
	Autocomplete *usecase.AutocompleteUseCase
	Session      *usecase.ManageSessionUseCase
	Downloads    *usecase.PrepareDownloadUseCase
	Permissions  *usecase.HandlePermissionUseCase
	Inject       *usecase.InjectExtensionsUseCase
}

// NewUseCases wires every use case to store. A nil loader disables injection.
func NewUseCases(cfg *config.Config, store repository.Store, loader *extensions.Loader) *UseCases {
	def, overrides := cfg.PermissionDecisions()

	var source port.ExtensionSource
	if loader != nil {
		source = loader
	}

	return &UseCases{
		Navigate:     usecase.NewNavigateUseCase(cfg.SearchEngine, cfg.HomePage),
		History:      usecase.NewManageHistoryUseCase(store.History(), cfg.History.MaxEntries),
		Bookmarks:    usecase.NewManageBookmarksUseCase(store.Bookmarks()),
		Autocomplete: usecase.NewAutocompleteUseCase(store.History(), store.Bookmarks(), cfg.Omnibox.MaxSuggestions),
		Session:      usecase.NewManageSessionUseCase(store.Session()),
		Downloads:    usecase.NewPrepareDownloadUseCase(filesystem.New(), cfg.Downloads.Path, cfg.Downloads.Ask),
		Permissions:  usecase.NewHandlePermissionUseCase(usecase.PermissionPolicy{Default: def, Overrides: overrides}),
		Inject:       usecase.NewInjectExtensionsUseCase(source),
	}
}

// TabDeps returns the tab manager collaborators. Factory and Presenter are left to the UI.
func (r *Runtime) TabDeps() usecase.TabManagerDeps {
	return usecase.TabManagerDeps{
		Navigate: r.UseCases.Navigate,
		History:  r.UseCases.History,
		Inject:   r.UseCases.Inject,
	}
}

// WebKitOptions describes the engine profile for this runtime.
func (r *Runtime) WebKitOptions() webkit.Options {
	return webkit.Options{
		DataDir:        r.WebKitDataDir,
		CacheDir:       r.WebKitCacheDir,
		EnableDevTools: r.Config.Debug.EnableDevTools,
		Downloads:      r.UseCases.Downloads,
		DownloadEvents: downloadLogger{},
		Permissions:    r.UseCases.Permissions,
	}
}

// NewWebViewFactory creates the engine factory. It must run after GTK is initialized.
func (r *Runtime) NewWebViewFactory(ctx context.Context) (port.WebViewFactory, error) {
	factory, err := webkit.NewFactory(ctx, r.WebKitOptions())
	if err != nil {
		return nil, err
	}
	return factory, nil
}

// downloadLogger reports download progress to the log.
type downloadLogger struct{}

func (downloadLogger) OnDownloadEvent(ctx context.Context, event port.DownloadEvent) {
	log := logging.FromContext(ctx)
	switch event.Type {
	case port.DownloadEventStarted:
		log.Info().Str("destination", event.Destination).Msg("download started")
	case port.DownloadEventFinished:
		log.Info().Str("destination", event.Destination).Msg("download finished")
	case port.DownloadEventFailed:
		log.Warn().Err(event.Error).Str("file", event.Filename).Msg("download failed")
	case port.DownloadEventRejected:
		log.Info().Str("file", event.Filename).Msg("download rejected")
	}
}
