// Package engine owns the grid and drives the editor, pathfinder and playback
// from a single cooperative host loop.
package engine

import (
	"github.com/lixenwraith/pathviz/constants"
	"github.com/lixenwraith/pathviz/editor"
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/maze"
	"github.com/lixenwraith/pathviz/search"
)

// Phase is the controller's current activity
type Phase uint8

const (
	PhaseEditing Phase = iota
	PhaseSearching
	PhaseRevealing
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSearching:
		return "searching"
	case PhaseRevealing:
		return "revealing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options holds the fixed startup parameters of a Game
type Options struct {
	PitchX, PitchY int     // Terminal cells per grid cell
	MazeSeed       int64   // 0 = time based
	MazeBraiding   float64 // See maze.Config
}

// DefaultOptions returns the reference pitch and maze settings
func DefaultOptions() Options {
	return Options{
		PitchX:       constants.CellPitchX,
		PitchY:       constants.CellPitchY,
		MazeBraiding: constants.MazeBraiding,
	}
}

// View is a read-only snapshot handed to the renderer
type View struct {
	Grid      *grid.Grid
	Phase     Phase
	Stage     editor.Stage
	Outcome   search.Status // Valid in PhaseRevealing and PhaseDone
	Stats     search.Stats
	RouteLen  int
	Remaining int // Route cells not yet revealed
}

// Game is the single top-level controller; it exclusively holds the grid and
// lends it to exactly one of editor, pathfinder or playback per tick
type Game struct {
	grid     *grid.Grid
	editor   *editor.Editor
	finder   *search.Pathfinder
	playback *search.Playback

	opts      Options
	phase     Phase
	outcome   search.Status
	stats     search.Stats
	routeLen  int
	mazeCount int64

	listeners []Listener
}

// NewGame creates a controller in the editing phase
func NewGame(g *grid.Grid, opts Options) *Game {
	if opts.PitchX <= 0 {
		opts.PitchX = 1
	}
	if opts.PitchY <= 0 {
		opts.PitchY = 1
	}
	return &Game{
		grid:     g,
		editor:   editor.New(g),
		playback: search.NewPlayback(g),
		opts:     opts,
	}
}

// AddListener registers an observer for game transitions
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Grid returns the owned grid for rendering
func (g *Game) Grid() *grid.Grid { return g.grid }

// Phase returns the current activity
func (g *Game) Phase() Phase { return g.phase }

// View snapshots the state the renderer needs
func (g *Game) View() View {
	v := View{
		Grid:      g.grid,
		Phase:     g.phase,
		Stage:     g.editor.Stage(),
		Outcome:   g.outcome,
		Stats:     g.stats,
		RouteLen:  g.routeLen,
		Remaining: g.playback.Remaining(),
	}
	if g.finder != nil && g.phase == PhaseSearching {
		v.Stats = g.finder.Stats()
	}
	return v
}

// HandleEvent applies one input event; returns false when the loop should stop
func (g *Game) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		g.cancelSearch()
		return false

	case EventPointer:
		if g.phase != PhaseEditing || ev.X < 0 || ev.Y < 0 {
			return true
		}
		p := grid.Point{X: ev.X / g.opts.PitchX, Y: ev.Y / g.opts.PitchY}
		if g.editor.Click(p) {
			s, _ := g.grid.At(p)
			for _, l := range g.listeners {
				l.CellPlaced(p, s)
			}
		}

	case EventSearch:
		if g.phase == PhaseEditing && g.editor.Ready() {
			g.startSearch()
		}

	case EventCancel:
		g.cancelSearch()

	case EventReset:
		g.cancelSearch()
		g.editor.Reset()
		g.playback.Clear()
		g.finder = nil
		g.phase = PhaseEditing
		g.outcome = search.Continue
		g.stats = search.Stats{}
		g.routeLen = 0
		for _, l := range g.listeners {
			l.Reset()
		}

	case EventMaze:
		if g.phase == PhaseEditing {
			g.stampMaze()
		}
	}
	return true
}

// Update performs one unit of work: a pathfinder step while searching or a
// playback tick while revealing. Other phases are idle.
func (g *Game) Update() error {
	switch g.phase {
	case PhaseSearching:
		st, err := g.finder.Step()
		if err != nil {
			return err
		}
		if st.Done() {
			g.finish(st)
		}

	case PhaseRevealing:
		if p, ok := g.playback.Tick(); ok {
			for _, l := range g.listeners {
				l.CellRevealed(p, g.playback.Remaining())
			}
		}
		if g.playback.Idle() {
			g.phase = PhaseDone
		}
	}
	return nil
}

func (g *Game) startSearch() {
	g.editor.Lock()

	var opts []search.Option
	// Start overwritten by End in the same cell yields the one-cell route
	if start, ok := g.editor.Start(); ok {
		if s, err := g.grid.At(start); err == nil && s == grid.End {
			opts = append(opts, search.WithStart(start))
		}
	}

	g.finder = search.New(g.grid, opts...)
	g.phase = PhaseSearching
	for _, l := range g.listeners {
		l.SearchStarted(g.finder.Start())
	}

	// No start cell left on the grid: nothing to step
	if st := g.finder.Status(); st.Done() {
		g.finish(st)
	}
}

func (g *Game) cancelSearch() {
	if g.phase != PhaseSearching {
		return
	}
	g.finder.Cancel()
	g.finish(search.Cancelled)
}

func (g *Game) finish(st search.Status) {
	route := g.finder.Route()
	g.outcome = st
	g.stats = g.finder.Stats()
	g.routeLen = len(route)

	for _, l := range g.listeners {
		l.SearchFinished(st, g.stats, route)
	}

	if st == search.Found {
		g.playback.Load(route)
		g.phase = PhaseRevealing
		return
	}
	g.phase = PhaseDone
}

func (g *Game) stampMaze() {
	var keep []grid.Point
	if p, ok := g.editor.Start(); ok {
		keep = append(keep, p)
	}
	if p, ok := g.editor.End(); ok {
		keep = append(keep, p)
	}

	seed := g.opts.MazeSeed
	if seed != 0 {
		// Successive presets differ but stay reproducible for a fixed seed
		seed += g.mazeCount
	}
	g.mazeCount++

	layout := maze.Generate(maze.Config{
		Width:    g.grid.Width(),
		Height:   g.grid.Height(),
		Braiding: g.opts.MazeBraiding,
		Keep:     keep,
		Seed:     seed,
	})
	n := g.editor.Stamp(layout)
	for _, l := range g.listeners {
		l.MazeStamped(n)
	}
}
