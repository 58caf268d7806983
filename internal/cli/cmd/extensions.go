package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/cli/styles"
	"github.com/subjectbrowser/subject/internal/infrastructure/extensions"
)

var errLintFailed = errors.New("one or more extensions failed to parse")

var extensionsCmd = &cobra.Command{
	Use:     "extensions",
	Aliases: []string{"ext"},
	Short:   "List and check content scripts",
	Long: `List and check content scripts.

Every directory under the extensions directory that holds the configured
script (inject.js by default) is injected into each page after it loads.`,
	Args: cobra.NoArgs,
	RunE: runExtensionsList,
}

var extensionsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List discovered scripts",
	Args:    cobra.NoArgs,
	RunE:    runExtensionsList,
}

var extensionsLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check every script for syntax errors",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return lintExtensions(app)
	},
}

func init() {
	rootCmd.AddCommand(extensionsCmd)
	extensionsCmd.AddCommand(extensionsListCmd, extensionsLintCmd)
}

func runExtensionsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return listExtensions(app)
}

func listExtensions(app *cli.App) error {
	loader := app.Runtime.Extensions
	exts, err := loader.Extensions(app.Ctx())
	if err != nil {
		return err
	}
	rows := make([]string, 0, len(exts))
	for _, ext := range exts {
		rows = append(rows, ext.Name+"  "+ext.Path)
	}
	app.Println(app.Theme.RenderURLList("Extensions in "+loader.Dir(), styles.IconCursor, rows, "No extensions found."))
	return nil
}

// lintExtensions prints one line per script and fails when any of them does not parse.
func lintExtensions(app *cli.App) error {
	results, err := extensions.LintAll(app.Ctx(), app.Runtime.Extensions)
	if err != nil {
		return err
	}

	lines := make([]styles.LintLine, 0, len(results))
	failed := 0
	for _, r := range results {
		lines = append(lines, styles.LintLine{Name: r.Extension.Name, Path: r.Extension.Path, Err: r.Err})
		if !r.OK() {
			failed++
		}
	}
	app.Println(app.Theme.RenderLint(lines))

	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", errLintFailed, failed, len(results))
	}
	return nil
}
