// Package search runs a cooperative breadth-first search over a grid and
// replays the discovered route one cell per tick.
//
// The grid state doubles as the visited set: a Blank cell becomes Checked at
// the moment it is enqueued, so each reachable cell enters the frontier once.
// Obstacle and Checked cells are impassable. End is never overwritten.
package search

import (
	"context"
	"slices"

	"github.com/lixenwraith/pathviz/grid"
)

// Status is the outcome of a single Step
type Status uint8

const (
	// Continue means the frontier still holds work
	Continue Status = iota
	// Found means the end cell was dequeued and Route is populated
	Found
	// Exhausted means the frontier emptied without reaching the end, or no start exists
	Exhausted
	// Cancelled means Cancel was called before completion
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Done reports whether s is terminal
func (s Status) Done() bool {
	return s != Continue
}

// Stats counts search work for display and logging
type Stats struct {
	Steps    int // Dequeued cells
	Checked  int // Blank cells marked Checked by this search
	Frontier int // Cells waiting in the queue
}

const noParent int32 = -1

// Pathfinder is a resumable BFS over a grid
// Frontier holds flat cell indices; parent back-pointers rebuild the route
type Pathfinder struct {
	g        *grid.Grid
	start    grid.Point
	startIdx int32
	explicit bool

	frontier []int32
	head     int
	parent   []int32
	endSeen  bool

	status Status
	route  Route
	stats  Stats
}

// Option configures a Pathfinder
type Option func(*Pathfinder)

// WithStart overrides the row-major scan for the Start cell
// An explicit start lets a start cell that was later overwritten by End
// produce the one-cell route
func WithStart(p grid.Point) Option {
	return func(pf *Pathfinder) {
		pf.start = p
		pf.explicit = true
	}
}

// New prepares a search over g. Without a start the search is already Exhausted.
func New(g *grid.Grid, opts ...Option) *Pathfinder {
	pf := &Pathfinder{
		g:        g,
		startIdx: noParent,
	}
	for _, o := range opts {
		o(pf)
	}

	if !pf.explicit {
		p, ok := g.Find(grid.Start)
		if !ok {
			pf.status = Exhausted
			return pf
		}
		pf.start = p
	} else if !g.InBounds(pf.start.X, pf.start.Y) {
		pf.status = Exhausted
		return pf
	}

	n := g.Width() * g.Height()
	pf.startIdx = int32(g.Index(pf.start))
	pf.parent = make([]int32, n)
	for i := range pf.parent {
		pf.parent[i] = noParent
	}
	pf.frontier = make([]int32, 1, n/4+1)
	pf.frontier[0] = pf.startIdx
	pf.stats.Frontier = 1
	return pf
}

// Start returns the coordinate the search expands from
func (pf *Pathfinder) Start() grid.Point { return pf.start }

// Status returns the last step outcome without advancing
func (pf *Pathfinder) Status() Status { return pf.status }

// Stats returns a snapshot of the work counters
func (pf *Pathfinder) Stats() Stats { return pf.stats }

// Route returns a copy of the discovered route, empty unless Found
func (pf *Pathfinder) Route() Route {
	if pf.status != Found {
		return Route{}
	}
	return slices.Clone(pf.route)
}

// Cancel aborts the search; cells already Checked stay Checked
func (pf *Pathfinder) Cancel() {
	if pf.status == Continue {
		pf.status = Cancelled
		pf.frontier = nil
		pf.head = 0
		pf.stats.Frontier = 0
	}
}

// Step dequeues one cell and expands it. It is the cooperative yield point:
// the host renders and checks for cancellation between calls.
func (pf *Pathfinder) Step() (Status, error) {
	if pf.status.Done() {
		return pf.status, nil
	}

	cur := pf.frontier[pf.head]
	pf.head++
	pf.stats.Steps++

	p := pf.g.Coord(int(cur))
	s, err := pf.g.At(p)
	if err != nil {
		return pf.status, err
	}
	if s == grid.End {
		pf.route = pf.trace(cur)
		pf.status = Found
		pf.stats.Frontier = len(pf.frontier) - pf.head
		return pf.status, nil
	}

	for n := range pf.g.Neighbors(p) {
		ns, err := pf.g.At(n)
		if err != nil {
			return pf.status, err
		}
		ni := int32(pf.g.Index(n))

		switch ns {
		case grid.Blank:
			if ni == pf.startIdx {
				continue
			}
			if err := pf.g.Put(n, grid.Checked); err != nil {
				return pf.status, err
			}
			pf.stats.Checked++
		case grid.End:
			// Only the first discovery can win, later ones would dequeue after it
			if pf.endSeen || ni == pf.startIdx {
				continue
			}
			pf.endSeen = true
		default:
			continue
		}

		pf.parent[ni] = cur
		pf.frontier = append(pf.frontier, ni)
	}

	pf.stats.Frontier = len(pf.frontier) - pf.head
	if pf.stats.Frontier == 0 {
		pf.status = Exhausted
	}
	return pf.status, nil
}

// Run drives Step until completion or ctx cancellation
// On cancellation the grid keeps its partial Checked cells and the route is empty
func (pf *Pathfinder) Run(ctx context.Context) (Route, error) {
	for {
		if err := ctx.Err(); err != nil {
			pf.Cancel()
			return Route{}, err
		}
		st, err := pf.Step()
		if err != nil {
			return Route{}, err
		}
		if st.Done() {
			return pf.Route(), nil
		}
	}
}

// trace walks parent pointers from idx back to the start
func (pf *Pathfinder) trace(idx int32) Route {
	var rev Route
	for {
		rev = append(rev, pf.g.Coord(int(idx)))
		if idx == pf.startIdx {
			break
		}
		idx = pf.parent[idx]
	}
	slices.Reverse(rev)
	return rev
}
