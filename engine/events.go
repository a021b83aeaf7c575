package engine

// EventKind identifies a host input event
type EventKind uint8

const (
	// EventPointer is a pointer press at terminal coordinates X, Y
	EventPointer EventKind = iota
	// EventSearch triggers the search once start and end exist
	EventSearch
	// EventCancel aborts a running search, keeping its Checked cells
	EventCancel
	// EventQuit aborts any search and stops the host loop
	EventQuit
	// EventReset clears the grid and returns to editing
	EventReset
	// EventMaze stamps a generated obstacle layout while editing
	EventMaze
)

func (k EventKind) String() string {
	switch k {
	case EventPointer:
		return "pointer"
	case EventSearch:
		return "search"
	case EventCancel:
		return "cancel"
	case EventQuit:
		return "quit"
	case EventReset:
		return "reset"
	case EventMaze:
		return "maze"
	default:
		return "unknown"
	}
}

// Event is one discrete input delivered to the host loop
type Event struct {
	Kind EventKind
	X, Y int // Terminal coordinates, EventPointer only
}
