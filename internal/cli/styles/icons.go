package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconHistory  = "\uf1da" // clock-rotate-left
	IconBookmark = "\uf02e" // bookmark
	IconSession  = "\uf2d2" // window
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconCursor   = "\uf054" // chevron-right
)

const (
	cursorSelected = IconCursor + " "
	cursorEmpty    = "  "
)
