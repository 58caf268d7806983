package repository

import (
	"context"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// SessionRepository loads and overwrites the saved tab list.
type SessionRepository interface {
	Load(ctx context.Context) (entity.SessionState, error)
	Save(ctx context.Context, state entity.SessionState) error
}
