package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/cli/model"
)

var omniboxOpen bool

var omniboxCmd = &cobra.Command{
	Use:   "omnibox",
	Short: "Pick an address from history and bookmarks in the terminal",
	Long: `Pick an address from history and bookmarks in the terminal.

Type to filter, use the arrows to choose and press enter. The chosen URL is
printed, or opened in the browser with --open.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		url, err := pickAddress(app)
		if err != nil || url == "" {
			return err
		}
		if !omniboxOpen {
			app.Println(url)
			return nil
		}
		// the browser builds its own runtime, release this one first
		_ = app.Close()
		return cli.RunBrowser(context.Background(), cli.BrowseOptions{ConfigDir: configDir, URL: url, LogLevel: logLevel})
	},
}

func init() {
	rootCmd.AddCommand(omniboxCmd)

	omniboxCmd.Flags().BoolVar(&omniboxOpen, "open", false, "open the chosen address in the browser")
}

func pickAddress(app *cli.App) (string, error) {
	uc := app.UseCases()
	m := model.NewOmniboxModel(app.Ctx(), app.Theme, uc.Autocomplete, uc.Navigate)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run model: %w", err)
	}
	omnibox, ok := finalModel.(model.OmniboxModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", finalModel)
	}
	// a failed lookup only matters when nothing was chosen
	if omnibox.Result() == "" {
		return "", omnibox.Err()
	}
	return omnibox.Result(), nil
}
