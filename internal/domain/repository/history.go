// Package repository defines persistence ports for the browser's collections.
package repository

import (
	"context"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// HistoryRepository loads and replaces the visit log as a whole.
type HistoryRepository interface {
	// Load returns the stored history, oldest first. A missing store yields an empty history.
	Load(ctx context.Context) (entity.History, error)
	// Save overwrites the stored history with h.
	Save(ctx context.Context, h entity.History) error
}
