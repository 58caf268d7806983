package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/logging"
)

// RuntimeRequirement is one native library the windowed shell needs.
type RuntimeRequirement struct {
	PkgConfigName string
	DisplayName   string
	MinVersion    string
}

// DefaultRuntimeRequirements are the libraries the GTK4 and WebKitGTK 6.0 bindings link against.
var DefaultRuntimeRequirements = []RuntimeRequirement{
	{PkgConfigName: "gtk4", DisplayName: "GTK4", MinVersion: "4.12"},
	{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", MinVersion: "2.42"},
	{PkgConfigName: "glib-2.0", DisplayName: "GLib", MinVersion: "2.76"},
}

// RuntimeDependencyStatus contains the result of checking a runtime dependency.
type RuntimeDependencyStatus struct {
	RuntimeRequirement

	Installed        bool
	Version          string
	MeetsRequirement bool
	Error            string
}

// CheckRuntimeOutput is the full report.
type CheckRuntimeOutput struct {
	OK     bool
	Checks []RuntimeDependencyStatus
}

// CheckRuntimeUseCase validates that the native libraries are installed and recent enough.
type CheckRuntimeUseCase struct {
	probe        port.RuntimeVersionProbe
	requirements []RuntimeRequirement
}

// NewCheckRuntimeUseCase creates the use case. Nil requirements use DefaultRuntimeRequirements.
func NewCheckRuntimeUseCase(probe port.RuntimeVersionProbe, requirements []RuntimeRequirement) *CheckRuntimeUseCase {
	if requirements == nil {
		requirements = DefaultRuntimeRequirements
	}
	return &CheckRuntimeUseCase{probe: probe, requirements: requirements}
}

// Execute probes every requirement. A failed probe is reported in the output, not returned.
func (uc *CheckRuntimeUseCase) Execute(ctx context.Context) *CheckRuntimeOutput {
	out := &CheckRuntimeOutput{OK: true, Checks: make([]RuntimeDependencyStatus, 0, len(uc.requirements))}

	for _, req := range uc.requirements {
		status := RuntimeDependencyStatus{RuntimeRequirement: req}

		version, err := uc.probe.ModVersion(ctx, req.PkgConfigName)
		switch {
		case err != nil:
			status.Error = err.Error()
		default:
			status.Installed = true
			status.Version = version
			cmp, ok := compareVersion(version, req.MinVersion)
			if !ok {
				status.Error = "could not parse version"
				break
			}
			status.MeetsRequirement = cmp >= 0
		}

		out.OK = out.OK && status.MeetsRequirement
		out.Checks = append(out.Checks, status)
	}

	logging.FromContext(ctx).Debug().Bool("ok", out.OK).Int("checks", len(out.Checks)).Msg("runtime dependency check complete")
	return out
}

// compareVersion compares dotted numeric versions, ignoring any suffix after the numbers.
// Returns 1 if a > b, 0 if equal, -1 if a < b.
func compareVersion(a, b string) (int, bool) {
	av, ok := parseVersion(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersion(b)
	if !ok {
		return 0, false
	}

	for i := 0; i < max(len(av), len(bv)); i++ {
		x, y := 0, 0
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		switch {
		case x > y:
			return 1, true
		case x < y:
			return -1, true
		}
	}
	return 0, true
}

// parseVersion reads "2.48.1" or "2.48.1-beta" into its numeric parts.
func parseVersion(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			break
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, len(parts) > 0
}
