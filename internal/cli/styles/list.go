package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
)

const maxSuggestionWidth = 72

// SuggestionItem adapts an autocomplete suggestion to list.Item.
type SuggestionItem struct {
	autocomplete.Suggestion
}

// FilterValue implements list.Item.
func (i SuggestionItem) FilterValue() string {
	return i.Title + " " + i.URL
}

// SuggestionDelegate renders one suggestion per line with its source icon.
type SuggestionDelegate struct {
	Theme *Theme
	// ShowCursor marks the selected row. Off while the typed text is the choice.
	ShowCursor bool
}

func (SuggestionDelegate) Height() int                             { return 1 }
func (SuggestionDelegate) Spacing() int                            { return 0 }
func (SuggestionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d SuggestionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(SuggestionItem)
	if !ok {
		return
	}
	t := d.Theme

	cursor := cursorEmpty
	urlStyle := t.ListItemTitle
	if d.ShowCursor && index == m.Index() {
		cursor = cursorSelected
		urlStyle = urlStyle.Foreground(t.Accent).Bold(true)
	}

	icon := IconHistory
	if si.Source == autocomplete.SourceBookmark {
		icon = IconBookmark
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		t.Subtle.Render(icon+" "),
		urlStyle.Render(Truncate(si.URL, maxSuggestionWidth)),
	)
	if si.Title != "" && si.Title != si.URL {
		line = lipgloss.JoinHorizontal(lipgloss.Left, line, " ", t.ListItemDesc.Render(Truncate(si.Title, maxSuggestionWidth/2)))
	}
	_, _ = fmt.Fprint(w, line)
}

// NewSuggestionList creates a themed list for suggestions.
func NewSuggestionList(theme *Theme, items []autocomplete.Suggestion, width, height int) list.Model {
	l := list.New(SuggestionItems(items), SuggestionDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}

// SuggestionItems converts suggestions to list items.
func SuggestionItems(items []autocomplete.Suggestion) []list.Item {
	out := make([]list.Item, len(items))
	for i, s := range items {
		out[i] = SuggestionItem{Suggestion: s}
	}
	return out
}

// Truncate shortens s to max runes, ending with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
