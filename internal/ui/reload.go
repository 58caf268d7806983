package ui

import (
	"context"

	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
	"github.com/subjectbrowser/subject/internal/logging"
)

// applyConfig pushes the live-reloadable settings into the use cases.
// Storage, window and extension settings take effect on the next start.
func applyConfig(ctx context.Context, cfg *config.Config, nav *usecase.NavigateUseCase, perms *usecase.HandlePermissionUseCase) {
	if cfg == nil {
		return
	}
	if nav != nil {
		nav.SetSearchEngine(cfg.SearchEngine)
		nav.SetHomePage(cfg.HomePage)
	}
	if perms != nil {
		def, overrides := cfg.PermissionDecisions()
		perms.SetPolicy(usecase.PermissionPolicy{Default: def, Overrides: overrides})
	}
	logging.FromContext(ctx).Info().
		Str("search_engine", cfg.SearchEngine).
		Str("home_page", cfg.HomePage).
		Msg("configuration applied")
}
