package repository

import (
	"context"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// BookmarkRepository loads and replaces the bookmark list.
type BookmarkRepository interface {
	Load(ctx context.Context) (entity.Bookmarks, error)
	Save(ctx context.Context, bookmarks entity.Bookmarks) error
}
