// Package cmd provides Cobra CLI commands for subject.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configDir string
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "subject",
		Short: "A small tabbed browser shell on WebKitGTK",
		Long: `Subject - a tabbed browser shell built with GTK4 and WebKitGTK.

One window, many tabs, an address bar that searches when you do not type
an address, and history, bookmarks and the last session kept as plain JSON.

Use 'subject browse' to launch the graphical browser, or the subcommands
to inspect and edit what the browser stores.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// commands that build their own runtime or need none
			switch cmd.Name() {
			case "help", "completion", "browse", "version", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(context.Background(), cli.Options{
				ConfigDir: configDir,
				LogLevel:  logLevel,
				Out:       cmd.OutOrStdout(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "read config.toml from this directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log to stderr at this level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
