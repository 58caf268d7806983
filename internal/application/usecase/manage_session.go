package usecase

import (
	"context"
	"fmt"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/logging"
)

// TabOpener opens a tab on a URL. An empty URL opens the home page.
type TabOpener interface {
	NewTab(ctx context.Context, url string) (*entity.Tab, error)
}

// TabSnapshotter lists the URL of every open tab in tab order.
type TabSnapshotter interface {
	URLs() []string
}

// ManageSessionUseCase restores tabs at startup and saves them at shutdown.
type ManageSessionUseCase struct {
	repo repository.SessionRepository
}

// NewManageSessionUseCase creates a new session use case.
func NewManageSessionUseCase(repo repository.SessionRepository) *ManageSessionUseCase {
	return &ManageSessionUseCase{repo: repo}
}

// RestoreOutput reports what Restore opened.
type RestoreOutput struct {
	Restored int
	Home     bool
}

// Restore opens one tab per saved URL, or a single home tab when nothing was saved.
// Malformed session data is returned unchanged so startup can abort.
func (uc *ManageSessionUseCase) Restore(ctx context.Context, tabs TabOpener) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	state, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if state.IsEmpty() {
		if _, err := tabs.NewTab(ctx, ""); err != nil {
			return nil, fmt.Errorf("failed to open home tab: %w", err)
		}
		log.Info().Msg("no saved session, opened home page")
		return &RestoreOutput{Home: true}, nil
	}

	out := &RestoreOutput{}
	for _, u := range state.URLs {
		if _, err := tabs.NewTab(ctx, u); err != nil {
			return out, fmt.Errorf("failed to restore tab %q: %w", u, err)
		}
		out.Restored++
	}

	log.Info().Int("tabs", out.Restored).Msg("session restored")
	return out, nil
}

// Persist overwrites the saved session with the current tab URLs.
func (uc *ManageSessionUseCase) Persist(ctx context.Context, tabs TabSnapshotter) error {
	state := entity.NewSessionState(tabs.URLs())
	if err := uc.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	logging.FromContext(ctx).Info().Int("tabs", len(state.URLs)).Msg("session saved")
	return nil
}

// Load returns the saved session without opening anything.
func (uc *ManageSessionUseCase) Load(ctx context.Context) (entity.SessionState, error) {
	state, err := uc.repo.Load(ctx)
	if err != nil {
		return entity.SessionState{}, fmt.Errorf("failed to load session: %w", err)
	}
	return state, nil
}

// Clear empties the saved session so the next launch opens the home page.
func (uc *ManageSessionUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Save(ctx, entity.SessionState{}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("session cleared")
	return nil
}
