package styles

import "github.com/charmbracelet/bubbles/textinput"

const urlCharLimit = 2048

// NewURLInput creates the address input of the omnibox, styled like the window's address bar.
func NewURLInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = IconCursor + " "
	ti.Placeholder = "Search or enter address"
	ti.CharLimit = urlCharLimit

	ti.PromptStyle = theme.Highlight
	ti.TextStyle = theme.Normal
	ti.PlaceholderStyle = theme.Subtle
	ti.Cursor.Style = theme.HelpKey
	return ti
}
