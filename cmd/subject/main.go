// Command subject is a tabbed WebKitGTK browser shell with a small CLI for its stored data.
package main

import (
	"runtime"

	"github.com/subjectbrowser/subject/internal/cli/cmd"
	"github.com/subjectbrowser/subject/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// GTK must own the main OS thread; cobra runs the browse command on it.
func init() {
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: shows help if no subcommand
	cmd.Execute()
}
