package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/cli/styles"
)

const defaultHistoryMax = 20

var (
	historyJSON bool
	historyMax  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show visited URLs",
	Long: `Show visited URLs, most recent first.

Examples:
  subject history            # last 20 visits
  subject history -n 100     # last 100 visits
  subject history --json     # machine readable`,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return showHistory(app, historyMax, historyJSON)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return clearHistory(app)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print as a JSON array")
	historyCmd.Flags().IntVarP(&historyMax, "max", "n", defaultHistoryMax, "number of entries to show (0 for all)")
}

func showHistory(app *cli.App, max int, asJSON bool) error {
	urls, err := app.UseCases().History.Recent(app.Ctx(), max)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(app, urls)
	}
	app.Println(app.Theme.RenderURLList("History", styles.IconHistory, urls, "No history yet."))
	return nil
}

func clearHistory(app *cli.App) error {
	if err := app.UseCases().History.Clear(app.Ctx()); err != nil {
		return err
	}
	app.Println(app.Theme.Success("History cleared"))
	return nil
}

// printJSON writes v indented, with nil slices as [].
func printJSON[T any](app *cli.App, v []T) error {
	if v == nil {
		v = []T{}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	app.Println(string(data))
	return nil
}
