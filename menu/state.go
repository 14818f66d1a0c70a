package menu

import "fmt"

// State is the open/closed state of a menu.
//
// The states form the cycle Closed → Opening → Open → Closed. Opening is not
// a rendering state of its own: the menu is already visible, but the click
// that opened it is still being dispatched. Its only purpose is to keep the
// global dismissal handler, which sees the same click after the trigger's own
// handler, from closing the menu again.
type State int

const (
	Closed State = iota
	Opening
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Opening:
		return "Opening"
	case Open:
		return "Open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Visible reports whether the wedges are shown in state s.
func (s State) Visible() bool {
	return s == Opening || s == Open
}

// Activate returns the state after the trigger has been activated. A closed
// menu starts opening; an opening or open menu closes.
func (s State) Activate() State {
	if s == Closed {
		return Opening
	}
	return Closed
}

// Dismiss returns the state after the global dismissal check has seen a
// click. inside reports whether the click landed on the menu's interactive
// surface.
//
// A menu that is Opening consumes the click and becomes Open. An Open menu
// closes unless the click was inside.
func (s State) Dismiss(inside bool) State {
	switch s {
	case Opening:
		return Open
	case Open:
		if inside {
			return Open
		}
		return Closed
	default:
		return Closed
	}
}

// Settle returns the state at the start of a new dispatch cycle. Opening does
// not outlive the cycle it was entered in.
func (s State) Settle() State {
	if s == Opening {
		return Open
	}
	return s
}

// Select returns the state after a wedge has been selected, which is always
// Closed.
func (s State) Select() State {
	return Closed
}
