package grid

import "iter"

// Neighbors yields the in-bounds orthogonal neighbors of p in the fixed order
// left, right, up, down. Search tie-breaking depends on this order.
func (g *Grid) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if p.X > 0 && !yield(Point{p.X - 1, p.Y}) {
			return
		}
		if p.X < g.width-1 && !yield(Point{p.X + 1, p.Y}) {
			return
		}
		if p.Y > 0 && !yield(Point{p.X, p.Y - 1}) {
			return
		}
		if p.Y < g.height-1 {
			yield(Point{p.X, p.Y + 1})
		}
	}
}
