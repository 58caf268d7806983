package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/repository"
	"github.com/subjectbrowser/subject/internal/logging"
)

// ErrBookmarkNotFound is returned when removing an index outside the list.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// ActiveTabSource exposes the tab currently shown to the user.
type ActiveTabSource interface {
	ActiveTab() *entity.Tab
}

// ManageBookmarksUseCase handles bookmark CRUD operations.
type ManageBookmarksUseCase struct {
	repo repository.BookmarkRepository
}

// NewManageBookmarksUseCase creates a new bookmark management use case.
func NewManageBookmarksUseCase(repo repository.BookmarkRepository) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{repo: repo}
}

// Add appends a bookmark. Duplicates are kept.
func (uc *ManageBookmarksUseCase) Add(ctx context.Context, title, url string) (entity.Bookmark, error) {
	log := logging.FromContext(ctx)

	bookmark := entity.NewBookmark(title, url)
	if err := bookmark.Validate(); err != nil {
		return entity.Bookmark{}, err
	}

	bookmarks, err := uc.repo.Load(ctx)
	if err != nil {
		return entity.Bookmark{}, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	bookmarks = append(bookmarks, bookmark)
	if err := uc.repo.Save(ctx, bookmarks); err != nil {
		return entity.Bookmark{}, fmt.Errorf("failed to save bookmarks: %w", err)
	}

	log.Info().
		Str("title", bookmark.Title).
		Str("url", logging.TruncateURL(bookmark.URL, 120)).
		Msg("bookmark added")
	return bookmark, nil
}

// AddActive bookmarks the active tab. It is a no-op without an active tab.
// A page that has no title yet is stored under its URL.
func (uc *ManageBookmarksUseCase) AddActive(ctx context.Context, tabs ActiveTabSource) (entity.Bookmark, bool, error) {
	tab := tabs.ActiveTab()
	if tab == nil || tab.URL == "" {
		logging.FromContext(ctx).Debug().Msg("no active tab to bookmark")
		return entity.Bookmark{}, false, nil
	}

	bookmark, err := uc.Add(ctx, tab.Title, tab.URL)
	if err != nil {
		return entity.Bookmark{}, false, err
	}
	return bookmark, true, nil
}

// List returns the saved bookmarks in order.
func (uc *ManageBookmarksUseCase) List(ctx context.Context) (entity.Bookmarks, error) {
	bookmarks, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Remove deletes the bookmark at index and returns it.
func (uc *ManageBookmarksUseCase) Remove(ctx context.Context, index int) (entity.Bookmark, error) {
	bookmarks, err := uc.repo.Load(ctx)
	if err != nil {
		return entity.Bookmark{}, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	remaining, ok := bookmarks.Remove(index)
	if !ok {
		return entity.Bookmark{}, fmt.Errorf("%w: index %d", ErrBookmarkNotFound, index)
	}
	removed := bookmarks[index]

	if err := uc.repo.Save(ctx, remaining); err != nil {
		return entity.Bookmark{}, fmt.Errorf("failed to save bookmarks: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int("index", index).
		Str("url", logging.TruncateURL(removed.URL, 120)).
		Msg("bookmark removed")
	return removed, nil
}
