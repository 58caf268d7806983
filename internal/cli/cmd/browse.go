package cmd

import (
	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
)

var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the graphical browser",
	Long: `Launch the GTK4 graphical browser.

The last session is restored first. If a URL or search text is given it is
opened in a new tab, or in the home tab when nothing was restored.

Examples:
  subject browse                  # restore the last session
  subject browse example.com      # restore, then open example.com
  subject browse "go contexts"    # restore, then search`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.BrowseOptions{ConfigDir: configDir, LogLevel: logLevel}
		if len(args) == 1 {
			opts.URL = args[0]
		}
		return cli.RunBrowser(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
