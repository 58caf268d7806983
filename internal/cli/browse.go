package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subjectbrowser/subject/internal/bootstrap"
	"github.com/subjectbrowser/subject/internal/logging"
	"github.com/subjectbrowser/subject/internal/ui"
)

// BrowseOptions configures RunBrowser.
type BrowseOptions struct {
	ConfigDir string
	// URL is opened after the session is restored. Search text is allowed.
	URL      string
	LogLevel string
}

// RunBrowser starts the windowed shell and blocks until the window closes.
// Must be called from the main OS thread.
func RunBrowser(ctx context.Context, opts BrowseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap.Init(ctx, bootstrap.Options{
		ConfigDir:      opts.ConfigDir,
		Stderr:         true,
		LogLevel:       opts.LogLevel,
		EagerStore:     true,
		WarmExtensions: true,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	ctx = rt.Context()
	log := logging.FromContext(ctx)

	app, err := ui.New(BrowserDependencies(rt, opts.URL))
	if err != nil {
		return fmt.Errorf("failed to create UI: %w", err)
	}
	stop := setupSignalHandler(ctx, app)
	defer stop()

	rt.Timer.Mark("ui")
	rt.Timer.Log(ctx)

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("browser exited: %w", err)
	}
	log.Info().Msg("browser closed")
	return nil
}

// BrowserDependencies maps the runtime onto what the UI layer needs.
func BrowserDependencies(rt *bootstrap.Runtime, initialURL string) *ui.Dependencies {
	uc := rt.UseCases
	return &ui.Dependencies{
		Ctx:           rt.Context(),
		Config:        rt.Config,
		ConfigManager: rt.ConfigManager,
		InitialURL:    initialURL,
		NewFactory:    rt.NewWebViewFactory,
		TabDeps:       rt.TabDeps(),
		Session:       uc.Session,
		Bookmarks:     uc.Bookmarks,
		Autocomplete:  uc.Autocomplete,
		Downloads:     uc.Downloads,
		Permissions:   uc.Permissions,
	}
}

type quitter interface {
	Quit()
}

// setupSignalHandler asks the app to quit on SIGINT or SIGTERM so the session is saved.
func setupSignalHandler(ctx context.Context, app quitter) (stop func()) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
			app.Quit()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
