package status

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pathviz/engine"
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/search"
)

// Recorder is a game listener that accumulates session totals into a Registry
type Recorder struct {
	reg   *Registry
	now   func() time.Time
	begun time.Time

	placed   *atomic.Int64
	mazes    *atomic.Int64
	resets   *atomic.Int64
	searches *atomic.Int64
	checked  *atomic.Int64
	steps    *atomic.Int64
	revealed *atomic.Int64
	outcomes map[search.Status]*atomic.Int64

	searchMs    *AtomicFloat
	searchMsMax *AtomicFloat
}

var _ engine.Listener = (*Recorder)(nil)

// NewRecorder caches metric pointers up front so callbacks never allocate
func NewRecorder(reg *Registry) *Recorder {
	return &Recorder{
		reg:      reg,
		now:      time.Now,
		placed:   reg.Ints.Get(MetricCellsPlaced),
		mazes:    reg.Ints.Get(MetricMazes),
		resets:   reg.Ints.Get(MetricResets),
		searches: reg.Ints.Get(MetricSearches),
		checked:  reg.Ints.Get(MetricCellsChecked),
		steps:    reg.Ints.Get(MetricSteps),
		revealed: reg.Ints.Get(MetricRevealed),
		outcomes: map[search.Status]*atomic.Int64{
			search.Found:     reg.Ints.Get(MetricFound),
			search.Exhausted: reg.Ints.Get(MetricExhausted),
			search.Cancelled: reg.Ints.Get(MetricCancelled),
		},
		searchMs:    reg.Floats.Get(MetricSearchMs),
		searchMsMax: reg.Floats.Get(MetricSearchMsMax),
	}
}

func (r *Recorder) Registry() *Registry { return r.reg }

func (r *Recorder) CellPlaced(grid.Point, grid.State) { r.placed.Add(1) }

func (r *Recorder) MazeStamped(int) { r.mazes.Add(1) }

func (r *Recorder) SearchStarted(grid.Point) {
	r.searches.Add(1)
	r.begun = r.now()
}

func (r *Recorder) SearchFinished(st search.Status, stats search.Stats, _ search.Route) {
	if c, ok := r.outcomes[st]; ok {
		c.Add(1)
	}
	r.checked.Add(int64(stats.Checked))
	r.steps.Add(int64(stats.Steps))

	ms := float64(r.now().Sub(r.begun)) / float64(time.Millisecond)
	r.searchMs.Add(ms)
	r.searchMsMax.Max(ms)
}

func (r *Recorder) CellRevealed(grid.Point, int) { r.revealed.Add(1) }

func (r *Recorder) Reset() { r.resets.Add(1) }
