package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/cli/styles"
)

var sessionJSON bool

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show or clear the tabs that will be restored",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tabs that will be restored",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved session so the next start opens the home page",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return clearSession(app)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd, sessionClearCmd)

	sessionCmd.PersistentFlags().BoolVar(&sessionJSON, "json", false, "print as a JSON array")
}

func runSessionShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return showSession(app, sessionJSON)
}

func showSession(app *cli.App, asJSON bool) error {
	state, err := app.UseCases().Session.Load(app.Ctx())
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(app, state.URLs)
	}
	app.Println(app.Theme.RenderURLList("Session", styles.IconSession, state.URLs, "No saved session."))
	return nil
}

func clearSession(app *cli.App) error {
	if err := app.UseCases().Session.Clear(app.Ctx()); err != nil {
		return err
	}
	app.Println(app.Theme.Success("Session cleared"))
	return nil
}
