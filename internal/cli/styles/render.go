package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

// RenderURLList renders a titled, numbered list of URLs.
// An empty list renders the empty message instead.
func (t *Theme) RenderURLList(title, icon string, urls []string, empty string) string {
	if len(urls) == 0 {
		return t.Subtle.Render(empty)
	}
	var b strings.Builder
	b.WriteString(t.header(icon, title, len(urls)))
	for i, u := range urls {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, t.Index.Render(fmt.Sprint(i)), t.Normal.Render(u)))
	}
	return b.String()
}

// RenderBookmarks renders bookmarks with their index, title and URL.
func (t *Theme) RenderBookmarks(bookmarks entity.Bookmarks) string {
	if len(bookmarks) == 0 {
		return t.Subtle.Render("No bookmarks yet.")
	}
	var b strings.Builder
	b.WriteString(t.header(IconBookmark, "Bookmarks", len(bookmarks)))
	for i, bm := range bookmarks {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(
			lipgloss.Left,
			t.Index.Render(fmt.Sprint(i)),
			t.ListItemTitle.Render(bm.Title),
		))
		if bm.Title != bm.URL {
			b.WriteString("\n")
			b.WriteString(lipgloss.JoinHorizontal(
				lipgloss.Left,
				t.Index.Render(""),
				t.ListItemDesc.Render(bm.URL),
			))
		}
	}
	return b.String()
}

// LintLine is one row of an extension check report.
type LintLine struct {
	Name string
	Path string
	Err  error
}

// RenderLint renders extension check results with a pass/fail mark per line.
func (t *Theme) RenderLint(lines []LintLine) string {
	if len(lines) == 0 {
		return t.Subtle.Render("No extensions found.")
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if l.Err == nil {
			b.WriteString(t.SuccessStyle.Render(IconCheck) + " " + t.Normal.Render(l.Name) + " " + t.Subtle.Render(l.Path))
			continue
		}
		b.WriteString(t.ErrorStyle.Render(IconX) + " " + t.Normal.Render(l.Name) + " " + t.ErrorStyle.Render(l.Err.Error()))
	}
	return b.String()
}

// Success renders a confirmation line.
func (t *Theme) Success(msg string) string {
	return t.SuccessStyle.Render(IconCheck) + " " + t.Normal.Render(msg)
}

func (t *Theme) header(icon, title string, count int) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(icon+" "),
		t.Title.Render(title),
		" ",
		t.BadgeMuted.Render(fmt.Sprint(count)),
	)
}
