// Package maze carves obstacle layouts for the editor's maze preset.
package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/pathviz/grid"
)

// Cell values in a Layout
const (
	Wall    = true
	Passage = false
)

// Layout is a wall map indexed [y][x]
type Layout [][]bool

// Config controls generation
type Config struct {
	Width, Height int

	// Braiding: 0.0 keeps a perfect maze (tree), 1.0 removes every dead end it safely can
	Braiding float64

	// Keep lists cells forced to Passage, typically the placed start and end
	Keep []grid.Point

	Seed int64 // 0 = time based
}

// Generate carves a recursive-backtracker maze sized Width x Height.
// Rooms sit on odd coordinates; an even trailing row or column stays open.
func Generate(cfg Config) Layout {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Layout{}
	}

	layout := make(Layout, cfg.Height)
	for y := range layout {
		layout[y] = make([]bool, cfg.Width)
	}

	rows := oddFloor(cfg.Height)
	cols := oddFloor(cfg.Width)
	if rows < 3 || cols < 3 {
		return layout
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			layout[y][x] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carve(layout, rows, cols, grid.Point{X: 1, Y: 1}, rng)
	if cfg.Braiding > 0 {
		braid(layout, rows, cols, cfg.Braiding, rng)
	}
	for _, p := range cfg.Keep {
		open(layout, p)
	}
	return layout
}

// Walls counts wall cells
func (l Layout) Walls() int {
	n := 0
	for _, row := range l {
		for _, c := range row {
			if c == Wall {
				n++
			}
		}
	}
	return n
}

var (
	jumps = [4]grid.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	steps = [4]grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
)

// carve runs an iterative depth-first backtracker over the odd-coordinate rooms
func carve(l Layout, rows, cols int, from grid.Point, rng *rand.Rand) {
	stack := []grid.Point{from}
	l[from.Y][from.X] = Passage
	candidates := make([]grid.Point, 0, 4)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range jumps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && l[ny][nx] == Wall {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		l[cur.Y+d.Y/2][cur.X+d.X/2] = Passage
		next := grid.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
		l[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens a wall at dead ends with the given probability, adding loops
// so that searches have more than one route to choose from
func braid(l Layout, rows, cols int, p float64, rng *rand.Rand) {
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if l[y][x] == Wall || exits(l, x, y) != 1 || rng.Float64() >= p {
				continue
			}
			var walls []grid.Point
			for _, d := range jumps {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if l[ny][nx] == Passage && l[wy][wx] == Wall && removable(l, wx, wy) {
					walls = append(walls, grid.Point{X: wx, Y: wy})
				}
			}
			if len(walls) > 0 {
				w := walls[rng.Intn(len(walls))]
				l[w.Y][w.X] = Passage
			}
		}
	}
}

func exits(l Layout, x, y int) int {
	n := 0
	for _, d := range steps {
		if l[y+d.Y][x+d.X] == Passage {
			n++
		}
	}
	return n
}

// removable rejects openings that would create a 2x2 open plaza or leave an isolated wall pillar
func removable(l Layout, x, y int) bool {
	passage := func(tx, ty int) bool {
		return ty >= 0 && ty < len(l) && tx >= 0 && tx < len(l[ty]) && l[ty][tx] == Passage
	}

	for _, q := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if passage(x+q[0], y) && passage(x, y+q[1]) && passage(x+q[0], y+q[1]) {
			return false
		}
	}

	for _, d := range steps {
		nx, ny := x+d.X, y+d.Y
		if ny < 0 || ny >= len(l) || nx < 0 || nx >= len(l[ny]) || l[ny][nx] != Wall {
			continue
		}
		links := 0
		for _, d2 := range steps {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if ay >= 0 && ay < len(l) && ax >= 0 && ax < len(l[ay]) && l[ay][ax] == Wall {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

// open clears p and, if it is then walled in, one interior neighbor
func open(l Layout, p grid.Point) {
	if p.Y < 0 || p.Y >= len(l) || p.X < 0 || p.X >= len(l[p.Y]) {
		return
	}
	l[p.Y][p.X] = Passage

	inside := func(x, y int) bool { return y >= 0 && y < len(l) && x >= 0 && x < len(l[y]) }
	for _, d := range steps {
		if nx, ny := p.X+d.X, p.Y+d.Y; inside(nx, ny) && l[ny][nx] == Passage {
			return
		}
	}
	for _, d := range steps {
		if nx, ny := p.X+d.X, p.Y+d.Y; inside(nx, ny) {
			l[ny][nx] = Passage
			return
		}
	}
}

// oddFloor rounds down to an odd number so the maze keeps a wall border
func oddFloor(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}
