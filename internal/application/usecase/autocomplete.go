package usecase

import (
	"context"
	"fmt"

	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/logging"
)

// AutocompleteUseCase produces address-bar suggestions from history and bookmarks.
type AutocompleteUseCase struct {
	historyRepo  repository.HistoryRepository
	bookmarkRepo repository.BookmarkRepository
	limit        int
}

// NewAutocompleteUseCase creates a suggestion use case returning at most limit URLs.
func NewAutocompleteUseCase(
	historyRepo repository.HistoryRepository,
	bookmarkRepo repository.BookmarkRepository,
	limit int,
) *AutocompleteUseCase {
	if limit <= 0 {
		limit = autocomplete.DefaultLimit
	}
	return &AutocompleteUseCase{
		historyRepo:  historyRepo,
		bookmarkRepo: bookmarkRepo,
		limit:        limit,
	}
}

// Suggest returns the URLs matching text. Empty text matches everything.
func (uc *AutocompleteUseCase) Suggest(ctx context.Context, text string) ([]autocomplete.Suggestion, error) {
	history, err := uc.historyRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	bookmarks, err := uc.bookmarkRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	suggestions := autocomplete.Suggest(history, bookmarks, text, uc.limit)
	logging.FromContext(ctx).Debug().
		Str("text", text).
		Int("count", len(suggestions)).
		Msg("computed suggestions")
	return suggestions, nil
}
