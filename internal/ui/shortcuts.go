package ui

// Action is a shell command bound to a keyboard shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionNewTab
	ActionCloseTab
	ActionFocusAddress
	ActionReload
	ActionBookmark
	ActionDevTools
	ActionBack
	ActionForward
	ActionNextTab
	ActionPrevTab
)

func (a Action) String() string {
	switch a {
	case ActionNewTab:
		return "new-tab"
	case ActionCloseTab:
		return "close-tab"
	case ActionFocusAddress:
		return "focus-address"
	case ActionReload:
		return "reload"
	case ActionBookmark:
		return "bookmark"
	case ActionDevTools:
		return "devtools"
	case ActionBack:
		return "back"
	case ActionForward:
		return "forward"
	case ActionNextTab:
		return "next-tab"
	case ActionPrevTab:
		return "prev-tab"
	default:
		return "none"
	}
}

// GDK keyvals used by the shortcuts.
const (
	gdkKeyTab     = 0xff09
	gdkKeyLeft    = 0xff51
	gdkKeyRight   = 0xff53
	gdkKeyUp      = 0xff52
	gdkKeyDown    = 0xff54
	gdkKeyEscape  = 0xff1b
	gdkKeyReturn  = 0xff0d
	gdkKeyF5      = 0xffc2
	gdkKeyF12     = 0xffc9
	gdkKeyISOLeft = 0xfe20 // ISO_Left_Tab, Shift+Tab
)

// Modifiers is the subset of the keyboard state shortcuts look at.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
}

// MatchShortcut maps a key press to its action.
func MatchShortcut(keyval uint, mods Modifiers) Action {
	switch {
	case mods.Ctrl && !mods.Alt:
		switch keyval {
		case 't', 'T':
			return ActionNewTab
		case 'w', 'W':
			return ActionCloseTab
		case 'l', 'L':
			return ActionFocusAddress
		case 'r', 'R':
			return ActionReload
		case 'd', 'D':
			return ActionBookmark
		case gdkKeyTab:
			if mods.Shift {
				return ActionPrevTab
			}
			return ActionNextTab
		case gdkKeyISOLeft:
			return ActionPrevTab
		}
	case mods.Alt && !mods.Ctrl:
		switch keyval {
		case gdkKeyLeft:
			return ActionBack
		case gdkKeyRight:
			return ActionForward
		}
	case !mods.Ctrl && !mods.Alt:
		switch keyval {
		case gdkKeyF12:
			return ActionDevTools
		case gdkKeyF5:
			return ActionReload
		}
	}
	return ActionNone
}
