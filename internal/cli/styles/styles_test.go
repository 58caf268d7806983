package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"

	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
	"github.com/subjectbrowser/subject/internal/domain/entity"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "héllo", Truncate("héllo", 5))
	assert.Equal(t, "anything", Truncate("anything", 0))
}

func TestRenderURLList(t *testing.T) {
	theme := NewTheme()

	out := theme.RenderURLList("History", IconHistory, []string{"https://a.test/", "https://b.test/"}, "empty")
	assert.Contains(t, out, "History")
	assert.Contains(t, out, "https://a.test/")
	assert.Contains(t, out, "https://b.test/")
	assert.Equal(t, 3, strings.Count(out, "\n")+1)

	assert.Equal(t, "empty", theme.RenderURLList("History", IconHistory, nil, "empty"))
}

func TestRenderBookmarks(t *testing.T) {
	theme := NewTheme()

	out := theme.RenderBookmarks(entity.Bookmarks{
		entity.NewBookmark("Go", "https://go.dev/"),
		entity.NewBookmark("", "https://pkg.go.dev/"),
	})
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "https://go.dev/")
	assert.Equal(t, 1, strings.Count(out, "https://pkg.go.dev/"))

	assert.Contains(t, theme.RenderBookmarks(nil), "No bookmarks")
}

func TestRenderLint(t *testing.T) {
	theme := NewTheme()
	out := theme.RenderLint([]LintLine{
		{Name: "good", Path: "/ext/good/inject.js"},
		{Name: "bad", Path: "/ext/bad/inject.js", Err: errors.New("unexpected token")},
	})
	assert.Contains(t, out, IconCheck+" good")
	assert.Contains(t, out, IconX+" bad")
	assert.Contains(t, out, "unexpected token")
	assert.NotContains(t, out, "/ext/bad/inject.js")

	assert.Contains(t, theme.RenderLint(nil), "No extensions")
}

func TestSuggestionDelegate_Render(t *testing.T) {
	theme := NewTheme()
	items := []autocomplete.Suggestion{
		{URL: "https://go.dev/", Source: autocomplete.SourceHistory},
		{URL: "https://pkg.go.dev/", Title: "Packages", Source: autocomplete.SourceBookmark},
	}
	l := NewSuggestionList(theme, items, 80, 10)

	var b strings.Builder
	d := SuggestionDelegate{Theme: theme, ShowCursor: true}
	d.Render(&b, l, 0, l.Items()[0])
	assert.Contains(t, b.String(), cursorSelected)
	assert.Contains(t, b.String(), IconHistory)

	b.Reset()
	d.Render(&b, l, 1, l.Items()[1])
	assert.Contains(t, b.String(), IconBookmark)
	assert.Contains(t, b.String(), "Packages")
	assert.NotContains(t, b.String(), cursorSelected)

	b.Reset()
	d.ShowCursor = false
	d.Render(&b, l, 0, l.Items()[0])
	assert.NotContains(t, b.String(), cursorSelected)

	b.Reset()
	d.Render(&b, l, 0, list.Item(nil))
	assert.Empty(t, b.String())
}

func TestOmniboxKeyMap_Help(t *testing.T) {
	keys := DefaultOmniboxKeyMap()
	assert.Len(t, keys.ShortHelp(), 4)
	assert.Len(t, keys.FullHelp(), 1)
}

func TestRenderDoctor(t *testing.T) {
	theme := NewTheme()
	out := theme.RenderDoctor(&usecase.CheckRuntimeOutput{
		OK: false,
		Checks: []usecase.RuntimeDependencyStatus{
			{RuntimeRequirement: usecase.RuntimeRequirement{PkgConfigName: "gtk4", DisplayName: "GTK4", MinVersion: "4.12"}, Installed: true, Version: "4.18.0", MeetsRequirement: true},
			{RuntimeRequirement: usecase.RuntimeRequirement{PkgConfigName: "webkitgtk-6.0", MinVersion: "2.42"}, Installed: true, Version: "2.40.1"},
			{RuntimeRequirement: usecase.RuntimeRequirement{PkgConfigName: "glib-2.0", DisplayName: "GLib"}, Error: "not found"},
		},
	})

	assert.Contains(t, out, "GTK4 4.18.0")
	assert.Contains(t, out, "webkitgtk-6.0 2.40.1, need >= 2.42")
	assert.Contains(t, out, "GLib missing")
	assert.Contains(t, out, "will not start")
	assert.NotContains(t, out, "Ready to browse.")
}
