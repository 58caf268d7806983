package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <text...>",
	Short: "Print the URL the address bar would load for text",
	Long: `Print the URL the address bar would load for text.

Examples:
  subject resolve example.com        # http://example.com
  subject resolve golang generics    # search URL`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		resolveText(app, strings.Join(args, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func resolveText(app *cli.App, text string) {
	app.Println(app.UseCases().Navigate.Resolve(app.Ctx(), text))
}
