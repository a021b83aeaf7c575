package search

import (
	"slices"

	"github.com/lixenwraith/pathviz/grid"
)

// Playback reveals a route one cell per tick by marking it Path
type Playback struct {
	g     *grid.Grid
	route Route
}

// NewPlayback creates an idle playback controller over g
func NewPlayback(g *grid.Grid) *Playback {
	return &Playback{g: g}
}

// Load replaces the pending route
func (pb *Playback) Load(r Route) {
	pb.route = slices.Clone(r)
}

// Tick pops the front coordinate and marks it Path
// Returns false once idle; points outside the grid are consumed without effect
func (pb *Playback) Tick() (grid.Point, bool) {
	if len(pb.route) == 0 {
		return grid.Point{}, false
	}
	p := pb.route[0]
	pb.route = pb.route[1:]
	if err := pb.g.Put(p, grid.Path); err != nil {
		return p, false
	}
	return p, true
}

// Idle reports whether the route has been fully revealed
func (pb *Playback) Idle() bool {
	return len(pb.route) == 0
}

// Remaining returns the number of cells still to reveal
func (pb *Playback) Remaining() int {
	return len(pb.route)
}

// Clear drops any pending route
func (pb *Playback) Clear() {
	pb.route = nil
}
