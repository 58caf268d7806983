package port

import (
	"context"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// ExtensionSource discovers script payloads to inject into pages.
type ExtensionSource interface {
	// Extensions returns every readable payload. A missing extensions
	// directory yields an empty list and no error.
	Extensions(ctx context.Context) ([]entity.Extension, error)
}
