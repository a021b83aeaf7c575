package constants

// UI Layout Constants
const (
	// StatusBarHeight is the number of terminal rows below the grid used for status text
	StatusBarHeight = 1

	// SeparatorGlyph draws the vertical grid line in a cell's first column
	SeparatorGlyph = '▏'

	// SeparatorFloorGlyph draws the horizontal grid line along a cell's last row,
	// only when a cell spans more than one row
	SeparatorFloorGlyph = '▁'
)

// Key Bindings
const (
	KeySearch = ' '
	KeyQuit   = 'q'
	KeyReset  = 'r'
	KeyMaze   = 'm'
)

// Status text per phase
const (
	StatusEditingStart = "click to place START"
	StatusEditingEnd   = "click to place END"
	StatusEditingWalls = "click to place walls, SPACE to search, m maze, r reset"
	StatusSearching    = "searching... ESC cancel"
	StatusRevealing    = "path found"
	StatusNoPath       = "no path"
	StatusCancelled    = "search cancelled"
	StatusDoneHint     = "r reset, q quit"
)

// ScreenWidth returns the terminal columns needed for a grid of the given width
func ScreenWidth(gridWidth, pitchX int) int {
	return gridWidth * pitchX
}

// ScreenHeight returns the terminal rows needed for the grid plus the status bar
func ScreenHeight(gridHeight, pitchY int) int {
	return gridHeight*pitchY + StatusBarHeight
}
