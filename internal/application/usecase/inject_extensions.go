package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/logging"
)

// InjectExtensionsUseCase runs every discovered extension payload in a page.
type InjectExtensionsUseCase struct {
	source port.ExtensionSource
}

// NewInjectExtensionsUseCase creates an injection use case. A nil source disables injection.
func NewInjectExtensionsUseCase(source port.ExtensionSource) *InjectExtensionsUseCase {
	return &InjectExtensionsUseCase{source: source}
}

// Execute injects the payloads into view and returns how many ran.
// Failures of individual payloads are joined; the remaining payloads still run.
func (uc *InjectExtensionsUseCase) Execute(ctx context.Context, view port.WebView) (int, error) {
	if uc.source == nil || view == nil {
		return 0, nil
	}
	log := logging.FromContext(ctx)

	extensions, err := uc.source.Extensions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load extensions: %w", err)
	}

	var errs []error
	injected := 0
	for _, ext := range extensions {
		if err := view.RunJavaScript(ctx, ext.Source, ext.Path); err != nil {
			log.Warn().Err(err).Str("extension", ext.Name).Msg("extension injection failed")
			errs = append(errs, fmt.Errorf("inject %s: %w", ext.Name, err))
			continue
		}
		injected++
	}

	if injected > 0 {
		log.Debug().Int("count", injected).Msg("injected extensions")
	}
	return injected, errors.Join(errs...)
}
