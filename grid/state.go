package grid

// State is the compact per-cell tag; it doubles as the search visited marker
type State uint8

const (
	Blank State = iota
	Obstacle
	Checked
	Path
	Start
	End
)

var stateNames = [...]string{
	Blank:    "blank",
	Obstacle: "obstacle",
	Checked:  "checked",
	Path:     "path",
	Start:    "start",
	End:      "end",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Passable reports whether the search may enter a cell in this state
func (s State) Passable() bool {
	return s == Blank || s == End
}
