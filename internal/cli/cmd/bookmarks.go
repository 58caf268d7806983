package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
)

var (
	bookmarksJSON bool
	bookmarkTitle string
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "List and edit bookmarks",
	Long: `List and edit bookmarks.

Bookmarks are numbered from 0 in the order they were saved.

Examples:
  subject bookmarks list                     # list
  subject bookmarks add go.dev --title Go    # add
  subject bookmarks remove 2                 # remove the third bookmark`,
	Args: cobra.NoArgs,
	RunE: runBookmarksList,
}

var bookmarksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookmarks",
	Args:    cobra.NoArgs,
	RunE:    runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return addBookmark(app, bookmarkTitle, args[0])
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:     "remove <index>",
	Aliases: []string{"rm"},
	Short:   "Remove a bookmark by index",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		return removeBookmark(app, index)
	},
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksAddCmd, bookmarksRemoveCmd)

	bookmarksCmd.PersistentFlags().BoolVar(&bookmarksJSON, "json", false, "print as a JSON array")
	bookmarksAddCmd.Flags().StringVarP(&bookmarkTitle, "title", "t", "", "bookmark title (defaults to the URL)")
}

func runBookmarksList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return listBookmarks(app, bookmarksJSON)
}

func listBookmarks(app *cli.App, asJSON bool) error {
	bookmarks, err := app.UseCases().Bookmarks.List(app.Ctx())
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(app, bookmarks)
	}
	app.Println(app.Theme.RenderBookmarks(bookmarks))
	return nil
}

// addBookmark stores the address as typed, after resolving it the way the address bar does.
func addBookmark(app *cli.App, title, text string) error {
	url := app.UseCases().Navigate.Resolve(app.Ctx(), text)
	bm, err := app.UseCases().Bookmarks.Add(app.Ctx(), title, url)
	if err != nil {
		return err
	}
	app.Println(app.Theme.Success("Bookmarked " + bm.Title))
	return nil
}

func removeBookmark(app *cli.App, index int) error {
	bm, err := app.UseCases().Bookmarks.Remove(app.Ctx(), index)
	if err != nil {
		return err
	}
	app.Println(app.Theme.Success("Removed " + bm.Title))
	return nil
}
