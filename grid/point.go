package grid

import "fmt"

// Point is a cell coordinate, X is the column and Y the row
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Adjacent reports whether q is an orthogonal neighbor of p (Manhattan distance 1)
func (p Point) Adjacent(q Point) bool {
	return abs(p.X-q.X)+abs(p.Y-q.Y) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
