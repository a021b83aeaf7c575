// Package editor maps pointer clicks onto grid edits.
package editor

import (
	"github.com/lixenwraith/pathviz/grid"
)

// Stage is what the next click designates
type Stage uint8

const (
	PlaceStart Stage = iota
	PlaceEnd
	PlaceObstacles
)

func (s Stage) String() string {
	switch s {
	case PlaceStart:
		return "place start"
	case PlaceEnd:
		return "place end"
	default:
		return "place obstacles"
	}
}

// Editor applies clicks in strict order: start, end, then obstacles
// It is the only place that keeps Start and End unique
type Editor struct {
	g      *grid.Grid
	stage  Stage
	start  grid.Point
	end    grid.Point
	locked bool
}

// New creates an editor over g, expecting the start click first
func New(g *grid.Grid) *Editor {
	return &Editor{g: g}
}

// Click applies the next designation at p
// Returns false when the click was ignored (locked or outside the grid)
func (e *Editor) Click(p grid.Point) bool {
	if e.locked || !e.g.InBounds(p.X, p.Y) {
		return false
	}

	var s grid.State
	switch e.stage {
	case PlaceStart:
		s = grid.Start
		e.start = p
		e.stage = PlaceEnd
	case PlaceEnd:
		s = grid.End
		e.end = p
		e.stage = PlaceObstacles
	default:
		s = grid.Obstacle
	}

	// Bounds checked above
	_ = e.g.Put(p, s)
	return true
}

// Stage returns what the next click designates
func (e *Editor) Stage() Stage { return e.stage }

// Ready reports whether both start and end have been designated
func (e *Editor) Ready() bool { return e.stage == PlaceObstacles }

// Start returns the designated start coordinate
func (e *Editor) Start() (grid.Point, bool) {
	return e.start, e.stage > PlaceStart
}

// End returns the designated end coordinate
func (e *Editor) End() (grid.Point, bool) {
	return e.end, e.stage > PlaceEnd
}

// Lock stops accepting clicks; called when a search is triggered
func (e *Editor) Lock() { e.locked = true }

// Locked reports whether clicks are being ignored
func (e *Editor) Locked() bool { return e.locked }

// Reset clears the grid and starts over with the start click
func (e *Editor) Reset() {
	e.g.Reset()
	*e = Editor{g: e.g}
}

// Stamp replaces the obstacle layout: walls become Obstacle and passages
// holding an Obstacle are cleared, so a new layout never stacks on an old one.
// The designated start and end are left untouched. Layout is indexed [y][x]
// and clipped to the grid. Returns the number of cells turned into Obstacle,
// zero when locked.
func (e *Editor) Stamp(layout [][]bool) int {
	if e.locked {
		return 0
	}
	n := 0
	for y, row := range layout {
		for x, wall := range row {
			if !e.g.InBounds(x, y) {
				continue
			}
			p := grid.Point{X: x, Y: y}
			s, _ := e.g.At(p)
			switch {
			case s == grid.Start || s == grid.End:
			case wall && s != grid.Obstacle:
				_ = e.g.Put(p, grid.Obstacle)
				n++
			case !wall && s == grid.Obstacle:
				_ = e.g.Put(p, grid.Blank)
			}
		}
	}
	return n
}
