package engine

import (
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/search"
)

// Listener observes game transitions; callbacks run on the host loop
type Listener interface {
	CellPlaced(p grid.Point, s grid.State)
	MazeStamped(walls int)
	SearchStarted(start grid.Point)
	SearchFinished(status search.Status, stats search.Stats, route search.Route)
	CellRevealed(p grid.Point, remaining int)
	Reset()
}

// NopListener implements Listener with empty methods for embedding
type NopListener struct{}

func (NopListener) CellPlaced(grid.Point, grid.State)                        {}
func (NopListener) MazeStamped(int)                                          {}
func (NopListener) SearchStarted(grid.Point)                                 {}
func (NopListener) SearchFinished(search.Status, search.Stats, search.Route) {}
func (NopListener) CellRevealed(grid.Point, int)                             {}
func (NopListener) Reset()                                                   {}
