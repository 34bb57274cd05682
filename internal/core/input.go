package core

// Action represents a semantic shell action, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone        Action = iota
	ActionDraw               // D, or the "Draw graph" button
	ActionChangeColor        // C, or the "Change graph color" button
	ActionNext               // Tab - focus next button
	ActionPrev               // Shift+Tab - focus previous button
	ActionConfirm            // Enter - press focused button or choose
	ActionBack               // Esc - cancel dialog
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDraw:
		return "Draw"
	case ActionChangeColor:
		return "ChangeColor"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
