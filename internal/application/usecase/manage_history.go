package usecase

import (
	"context"
	"fmt"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/logging"
)

// ManageHistoryUseCase records and lists visited URLs.
type ManageHistoryUseCase struct {
	repo  repository.HistoryRepository
	limit int
}

// NewManageHistoryUseCase creates a history use case keeping at most limit entries.
// A limit outside 1..entity.DefaultHistoryLimit uses entity.DefaultHistoryLimit.
func NewManageHistoryUseCase(repo repository.HistoryRepository, limit int) *ManageHistoryUseCase {
	if limit <= 0 || limit > entity.DefaultHistoryLimit {
		limit = entity.DefaultHistoryLimit
	}
	return &ManageHistoryUseCase{repo: repo, limit: limit}
}

// Limit returns the retention cap.
func (uc *ManageHistoryUseCase) Limit() int {
	return uc.limit
}

// Record appends url and rewrites the collection truncated to the cap.
func (uc *ManageHistoryUseCase) Record(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}

	history, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	updated := history.Append(url, uc.limit)
	if err := uc.repo.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(url, 120)).
		Int("entries", len(updated)).
		Msg("recorded history entry")
	return nil
}

// Recent returns up to max entries, most recent first. max <= 0 returns all.
func (uc *ManageHistoryUseCase) Recent(ctx context.Context, max int) ([]string, error) {
	history, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	urls := history.URLs()
	recent := make([]string, 0, len(urls))
	for i := len(urls) - 1; i >= 0; i-- {
		if max > 0 && len(recent) == max {
			break
		}
		recent = append(recent, urls[i])
	}
	return recent, nil
}

// Clear removes every history entry.
func (uc *ManageHistoryUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Save(ctx, entity.History{}); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("history cleared")
	return nil
}
