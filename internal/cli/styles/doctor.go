package styles

import (
	"fmt"
	"strings"

	"github.com/subjectbrowser/subject/internal/application/usecase"
)

// RenderDoctor renders one line per runtime check and a verdict.
func (t *Theme) RenderDoctor(out *usecase.CheckRuntimeOutput) string {
	lines := make([]string, 0, len(out.Checks)+2)
	lines = append(lines, t.Title.Render("Runtime"))
	for _, c := range out.Checks {
		lines = append(lines, t.renderRuntimeCheck(c))
	}

	if out.OK {
		lines = append(lines, t.SuccessStyle.Render("Ready to browse."))
	} else {
		lines = append(lines, t.ErrorStyle.Render("The browser will not start until the failed checks are fixed."))
	}
	return strings.Join(lines, "\n")
}

func (t *Theme) renderRuntimeCheck(c usecase.RuntimeDependencyStatus) string {
	name := c.DisplayName
	if name == "" {
		name = c.PkgConfigName
	}

	var detail string
	switch {
	case !c.Installed:
		detail = t.ErrorStyle.Render("missing")
	case c.Error != "":
		detail = t.ErrorStyle.Render(fmt.Sprintf("%s (%s)", c.Version, c.Error))
	case !c.MeetsRequirement:
		detail = t.ErrorStyle.Render(fmt.Sprintf("%s, need >= %s", c.Version, c.MinVersion))
	default:
		detail = t.Subtle.Render(c.Version)
	}

	icon := t.SuccessStyle.Render(IconCheck)
	if !c.MeetsRequirement {
		icon = t.ErrorStyle.Render(IconX)
	}
	return icon + " " + t.Normal.Render(name) + " " + detail
}
