// Package header renders the page header and owns its one piece of UI state:
// whether the mobile navigation menu is open.
//
// The state is a two-state machine. Toggle flips it; Navigate (choosing a
// destination from the open menu) always closes it. Transition is total, so
// the header can cycle between the states for the lifetime of the page.
package header

// State is the mobile menu state.
type State int

// Menu states. Closed is the initial state.
const (
	Closed State = iota
	Open
)

func (s State) String() (name string) {
	name = "closed"
	if s == Open {
		name = "open"
	}
	return name
}

// ParseState reads a state name. Anything but "open" is Closed.
func ParseState(name string) (s State) {
	s = Closed
	if name == "open" {
		s = Open
	}
	return s
}

// Event is a user input the header reacts to.
type Event int

// Header events.
const (
	// Toggle is raised by the menu toggle control.
	Toggle Event = iota
	// Navigate is raised by a navigation link in the mobile menu.
	Navigate
)

// Names of the events as carried on view nodes.
const (
	ToggleEventName   = "toggle"
	NavigateEventName = "navigate"
)

func (e Event) String() (name string) {
	name = ToggleEventName
	if e == Navigate {
		name = NavigateEventName
	}
	return name
}

// Transition returns the state after event.
func Transition(s State, e Event) (next State) {
	switch e {
	case Navigate:
		next = Closed
	default:
		next = Open
		if s == Open {
			next = Closed
		}
	}
	return next
}

// Menu is the state owned by one header instance. It is not safe for
// concurrent use.
type Menu struct {
	state State
}

// NewMenu returns a menu in the initial Closed state.
func NewMenu() (m *Menu) {
	m = &Menu{state: Closed}
	return m
}

// State returns the current state.
func (m *Menu) State() (s State) {
	s = m.state
	return s
}

// Dispatch applies event and returns the new state.
func (m *Menu) Dispatch(e Event) (s State) {
	m.state = Transition(m.state, e)
	s = m.state
	return s
}
