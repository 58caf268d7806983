package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/infrastructure/deps"
)

var errRuntimeMissing = errors.New("runtime requirements not met")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that GTK4 and WebKitGTK are installed",
	Long: `Doctor checks the native libraries the browser window needs.

Versions are read with pkg-config, so the development packages must be
installed for the checks to pass.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return runDoctor(app, deps.NewPkgConfigProbe())
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(app *cli.App, probe port.RuntimeVersionProbe) error {
	out := usecase.NewCheckRuntimeUseCase(probe, nil).Execute(app.Ctx())
	app.Println(app.Theme.RenderDoctor(out))
	if !out.OK {
		return errRuntimeMissing
	}
	return nil
}
