package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/application/port"
	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/domain/build"
	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// newTestApp builds an app over throwaway XDG directories and captures its output.
func newTestApp(t *testing.T) (*cli.App, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("SUBJECT_LOG_LEVEL", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_DOWNLOAD_DIR", filepath.Join(root, "downloads"))

	out := &bytes.Buffer{}
	app, err := cli.NewApp(context.Background(), cli.Options{Out: out})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, out
}

func writeScript(t *testing.T, app *cli.App, name, source string) {
	t.Helper()
	dir := filepath.Join(app.Runtime.Extensions.Dir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, app.Runtime.Extensions.ScriptName()), []byte(source), 0o644))
}

func TestShowHistory(t *testing.T) {
	app, out := newTestApp(t)
	ctx := app.Ctx()
	for _, u := range []string{"https://a.test/", "https://b.test/", "https://c.test/"} {
		require.NoError(t, app.UseCases().History.Record(ctx, u))
	}

	require.NoError(t, showHistory(app, 2, true))
	var got []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []string{"https://c.test/", "https://b.test/"}, got)

	out.Reset()
	require.NoError(t, showHistory(app, 0, false))
	assert.Contains(t, out.String(), "History")
	assert.Contains(t, out.String(), "https://a.test/")
}

func TestShowHistory_EmptyJSONIsArray(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, showHistory(app, defaultHistoryMax, true))
	assert.JSONEq(t, "[]", out.String())
}

func TestClearHistory(t *testing.T) {
	app, out := newTestApp(t)
	ctx := app.Ctx()
	require.NoError(t, app.UseCases().History.Record(ctx, "https://a.test/"))

	require.NoError(t, clearHistory(app))
	assert.Contains(t, out.String(), "History cleared")

	recent, err := app.UseCases().History.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestBookmarks_AddListRemove(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, addBookmark(app, "Go", "go.dev"))
	require.NoError(t, addBookmark(app, "", "https://pkg.go.dev/"))
	assert.Contains(t, out.String(), "Bookmarked Go")

	out.Reset()
	require.NoError(t, listBookmarks(app, true))
	var got []entity.Bookmark
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []entity.Bookmark{
		{Title: "Go", URL: "http://go.dev"},
		{Title: "https://pkg.go.dev/", URL: "https://pkg.go.dev/"},
	}, got)

	out.Reset()
	require.NoError(t, removeBookmark(app, 0))
	assert.Contains(t, out.String(), "Removed Go")

	bookmarks, err := app.UseCases().Bookmarks.List(app.Ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://pkg.go.dev/"}, bookmarks.URLs())
}

func TestRemoveBookmark_OutOfRange(t *testing.T) {
	app, _ := newTestApp(t)

	err := removeBookmark(app, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrBookmarkNotFound)
}

func TestListBookmarks_Empty(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, listBookmarks(app, false))
	assert.Contains(t, out.String(), "No bookmarks yet.")
}

func TestSession_ShowAndClear(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, showSession(app, true))
	assert.JSONEq(t, "[]", out.String())

	out.Reset()
	require.NoError(t, clearSession(app))
	assert.Contains(t, out.String(), "Session cleared")

	out.Reset()
	require.NoError(t, showSession(app, false))
	assert.Contains(t, out.String(), "No saved session.")
}

func TestResolveText(t *testing.T) {
	app, out := newTestApp(t)

	resolveText(app, "example.com")
	resolveText(app, "two words")
	assert.Equal(t,
		"http://example.com\n"+app.UseCases().Navigate.SearchURL("two words")+"\n",
		out.String())
}

func TestExtensions_ListAndLint(t *testing.T) {
	app, out := newTestApp(t)
	writeScript(t, app, "dark", "document.body.classList.add('dark');")

	require.NoError(t, listExtensions(app))
	assert.Contains(t, out.String(), "dark")

	out.Reset()
	require.NoError(t, lintExtensions(app))
	assert.Contains(t, out.String(), "dark")
}

func TestLintExtensions_SyntaxError(t *testing.T) {
	app, out := newTestApp(t)
	writeScript(t, app, "good", "void 0;")
	writeScript(t, app, "broken", "function (")

	err := lintExtensions(app)
	require.Error(t, err)
	assert.ErrorIs(t, err, errLintFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), "syntax error in broken")
}

func TestLintExtensions_NoneFound(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, lintExtensions(app))
	assert.Contains(t, out.String(), "No extensions found.")
}

func TestPrintSchema(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, printSchema(app, false))
	var schema map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	assert.Equal(t, "Subject Browser Configuration", schema["title"])

	out.Reset()
	require.NoError(t, printSchema(app, true))
	assert.FileExists(t, filepath.Join(app.Runtime.ConfigManager.ConfigDir(), "config.schema.json"))
}

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"history":    {"clear"},
		"bookmarks":  {"list", "add", "remove"},
		"session":    {"show", "clear"},
		"extensions": {"list", "lint"},
		"config":     {"path", "schema"},
	}
	for name, subs := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
		for _, sub := range subs {
			sc, _, err := rootCmd.Find([]string{name, sub})
			require.NoError(t, err)
			assert.Equal(t, sub, sc.Name())
		}
	}
	for _, name := range []string{"browse", "version", "resolve", "omnibox", "doctor"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc", BuildDate: "today", GoVersion: "go1.x"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Nil(t, GetApp())
}

type versionProbe map[string]string

func (p versionProbe) ModVersion(_ context.Context, pkg string) (string, error) {
	if v, ok := p[pkg]; ok {
		return v, nil
	}
	return "", &port.PkgConfigError{Package: pkg, Err: port.ErrPkgConfigPackageMissing}
}

func TestRunDoctor(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runDoctor(app, versionProbe{"gtk4": "4.18.0", "webkitgtk-6.0": "2.48.0", "glib-2.0": "2.84.1"}))
	assert.Contains(t, out.String(), "Ready to browse.")

	out.Reset()
	err := runDoctor(app, versionProbe{"gtk4": "4.18.0"})
	assert.ErrorIs(t, err, errRuntimeMissing)
	assert.Contains(t, out.String(), "WebKitGTK 6.0 missing")
}
