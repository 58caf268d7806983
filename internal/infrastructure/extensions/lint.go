package extensions

import (
	"context"
	"fmt"

	"github.com/grafana/sobek"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// LintResult is the syntax check outcome for one extension.
type LintResult struct {
	Extension entity.Extension
	Err       error
}

// OK reports whether the payload parsed.
func (r LintResult) OK() bool { return r.Err == nil }

// Lint compiles a payload without running it.
func Lint(ext entity.Extension) error {
	if _, err := sobek.Compile(ext.Path, ext.Source, false); err != nil {
		return fmt.Errorf("syntax error in %s: %w", ext.Name, err)
	}
	return nil
}

// LintAll loads every extension from l and checks each one.
func LintAll(ctx context.Context, l *Loader) ([]LintResult, error) {
	exts, err := l.Extensions(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]LintResult, 0, len(exts))
	for _, ext := range exts {
		results = append(results, LintResult{Extension: ext, Err: Lint(ext)})
	}
	return results, nil
}
