// Package grid holds the fixed-size cell-state model and its neighbor enumerator.
package grid

import (
	"fmt"
	"iter"
)

// Grid is a dense row-major 2D array of cell states
// It exclusively owns all cells; callers operate on it through a pointer
type Grid struct {
	width  int
	height int
	cells  []State // index = y*width + x
}

// New creates a grid with every cell Blank
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state at (x, y)
func (g *Grid) Get(x, y int) (State, error) {
	if !g.InBounds(x, y) {
		return Blank, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[y*g.width+x], nil
}

// Set assigns any state to (x, y); uniqueness of Start/End is the caller's concern
func (g *Grid) Set(x, y int, s State) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[y*g.width+x] = s
	return nil
}

// At is Get for a Point
func (g *Grid) At(p Point) (State, error) {
	return g.Get(p.X, p.Y)
}

// Put is Set for a Point
func (g *Grid) Put(p Point, s State) error {
	return g.Set(p.X, p.Y, s)
}

// Find returns the first cell holding s in row-major order
func (g *Grid) Find(s State) (Point, bool) {
	for i, c := range g.cells {
		if c == s {
			return g.point(i), true
		}
	}
	return Point{}, false
}

// Count returns the number of cells holding s
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// All yields every cell in row-major order
func (g *Grid) All() iter.Seq2[Point, State] {
	return func(yield func(Point, State) bool) {
		for i, c := range g.cells {
			if !yield(g.point(i), c) {
				return
			}
		}
	}
}

// Reset returns every cell to Blank
func (g *Grid) Reset() {
	clear(g.cells)
}

// Index converts an in-bounds point to its flat index
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coord converts a flat index back to a point
func (g *Grid) Coord(i int) Point {
	return g.point(i)
}

func (g *Grid) point(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}
