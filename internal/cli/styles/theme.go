// Package styles provides the lipgloss styles and bubbles components used by the CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of hex colors a Theme is built from.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Panel   string
	Success string
	Error   string
}

// DefaultPalette matches the browser's dark new-tab page.
func DefaultPalette() Palette {
	return Palette{
		Text:    "#e5e7eb",
		Muted:   "#8b8f98",
		Accent:  "#60a5fa",
		Panel:   "#26282c",
		Success: "#4ade80",
		Error:   "#f87171",
	}
}

// Theme holds the palette colors and the styles derived from them.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItemTitle lipgloss.Style
	ListItemDesc  lipgloss.Style
	// Index is the right-aligned number column of listings.
	Index      lipgloss.Style
	BadgeMuted lipgloss.Style

	InputFocused lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from p.
func NewThemeFromPalette(p Palette) *Theme {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Theme{
		Text:   text,
		Muted:  muted,
		Accent: accent,

		Title:        fg(text).Bold(true),
		Normal:       fg(text),
		Subtle:       fg(muted),
		Highlight:    fg(accent).Bold(true),
		ErrorStyle:   fg(lipgloss.Color(p.Error)),
		SuccessStyle: fg(lipgloss.Color(p.Success)),

		ListItemTitle: fg(text),
		ListItemDesc:  fg(muted).Italic(true),
		Index:         fg(muted).Width(4).Align(lipgloss.Right).MarginRight(1),
		BadgeMuted:    fg(text).Background(lipgloss.Color(p.Panel)).Padding(0, 1),

		InputFocused: fg(text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		HelpKey:  fg(accent),
		HelpDesc: fg(muted),
	}
}
