// Package model holds the Bubble Tea models behind the interactive commands.
package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subjectbrowser/subject/internal/cli/styles"
	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6
	minListHeight = 3
)

// Suggester produces suggestions for the typed text.
type Suggester interface {
	Suggest(ctx context.Context, text string) ([]autocomplete.Suggestion, error)
}

// Resolver turns typed text into a loadable URL.
type Resolver interface {
	Resolve(ctx context.Context, text string) string
}

// OmniboxModel is an address bar in the terminal: type, pick a suggestion, get a URL.
type OmniboxModel struct {
	ctx   context.Context
	theme *styles.Theme
	keys  styles.OmniboxKeyMap

	input textinput.Model
	list  list.Model
	help  help.Model

	suggester Suggester
	resolver  Resolver

	// query is the text the visible suggestions were computed for.
	query    string
	items    []autocomplete.Suggestion
	browsing bool
	result   string
	err      error

	width  int
	height int
}

// suggestionsMsg carries the result of one lookup.
type suggestionsMsg struct {
	query string
	items []autocomplete.Suggestion
	err   error
}

// NewOmniboxModel creates an omnibox over suggester and resolver.
func NewOmniboxModel(ctx context.Context, theme *styles.Theme, suggester Suggester, resolver Resolver) OmniboxModel {
	input := styles.NewURLInput(theme)
	input.Focus()

	m := OmniboxModel{
		ctx:       ctx,
		theme:     theme,
		keys:      styles.DefaultOmniboxKeyMap(),
		input:     input,
		help:      styles.NewStyledHelp(theme),
		suggester: suggester,
		resolver:  resolver,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.rebuildList()
	return m
}

// Init implements tea.Model.
func (m OmniboxModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.lookup(""))
}

func (m OmniboxModel) lookup(text string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.suggester.Suggest(m.ctx, text)
		return suggestionsMsg{query: text, items: items, err: err}
	}
}

// Update implements tea.Model.
func (m OmniboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildList()
		return m, nil

	case suggestionsMsg:
		// drop answers to text the user has since changed
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.query = msg.query
		m.err = msg.err
		m.items = msg.items
		m.rebuildList()
		m.setBrowsing(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m OmniboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.result = ""
		return m, tea.Quit

	case key.Matches(msg, m.keys.Open):
		m.result = m.resolve(m.choice())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if len(m.items) == 0 {
			return m, nil
		}
		if !m.browsing {
			m.setBrowsing(true)
			m.list.Select(0)
			return m, nil
		}
		if m.list.Index() < len(m.items)-1 {
			m.list.Select(m.list.Index() + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if !m.browsing {
			return m, nil
		}
		if m.list.Index() == 0 {
			m.setBrowsing(false)
			return m, nil
		}
		m.list.Select(m.list.Index() - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == m.query {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.lookup(m.input.Value()))
}

// choice is the highlighted suggestion, or the typed text when none is highlighted.
func (m OmniboxModel) choice() string {
	if m.browsing {
		if item, ok := m.list.SelectedItem().(styles.SuggestionItem); ok {
			return item.URL
		}
	}
	return m.input.Value()
}

func (m OmniboxModel) resolve(text string) string {
	if text == "" {
		return ""
	}
	return m.resolver.Resolve(m.ctx, text)
}

func (m *OmniboxModel) rebuildList() {
	height := m.height - chromeHeight
	if height < minListHeight {
		height = minListHeight
	}
	index := m.list.Index()
	m.list = styles.NewSuggestionList(m.theme, m.items, m.width, height)
	m.list.SetDelegate(styles.SuggestionDelegate{Theme: m.theme, ShowCursor: m.browsing})
	if m.browsing && index < len(m.items) {
		m.list.Select(index)
	}
}

func (m *OmniboxModel) setBrowsing(on bool) {
	m.browsing = on
	m.list.SetDelegate(styles.SuggestionDelegate{Theme: m.theme, ShowCursor: on})
}

// View implements tea.Model.
func (m OmniboxModel) View() string {
	t := m.theme

	body := m.list.View()
	switch {
	case m.err != nil:
		body = t.ErrorStyle.Render("Error: " + m.err.Error())
	case len(m.items) == 0:
		body = t.Subtle.Render("No suggestions")
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.InputFocused.Render(m.input.View()),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

// Result returns the resolved URL, or "" when the user cancelled.
func (m OmniboxModel) Result() string {
	return m.result
}

// Err returns the last lookup error.
func (m OmniboxModel) Err() error {
	return m.err
}

var _ tea.Model = OmniboxModel{}
