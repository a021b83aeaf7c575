package constants

import "time"

// Grid Constants
const (
	// GridWidth is the reference grid width in cells
	GridWidth = 40

	// GridHeight is the reference grid height in cells
	GridHeight = 40

	// CellPitchX is the number of terminal columns per grid cell
	// Two columns keep cells roughly square in common terminal fonts
	CellPitchX = 2

	// CellPitchY is the number of terminal rows per grid cell
	CellPitchY = 1
)

// Game Loop Timing Constants
const (
	// TicksPerSecond is the host loop rate for editing and route playback
	TicksPerSecond = 60

	// TickInterval is the duration of one host loop tick
	TickInterval = time.Second / TicksPerSecond

	// EventQueueSize is the buffered capacity between the input poller and the host loop
	EventQueueSize = 256
)

// Maze Preset Constants
const (
	// MazeBraiding is the dead-end removal probability for generated obstacle layouts
	MazeBraiding = 0.25
)
