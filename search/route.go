package search

import "github.com/lixenwraith/pathviz/grid"

// Route is an ordered start-to-end sequence of orthogonally adjacent cells
type Route []grid.Point

// Valid reports whether every consecutive pair is orthogonally adjacent
func (r Route) Valid() bool {
	for i := 1; i < len(r); i++ {
		if !r[i-1].Adjacent(r[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether p lies on the route
func (r Route) Contains(p grid.Point) bool {
	for _, q := range r {
		if q == p {
			return true
		}
	}
	return false
}
