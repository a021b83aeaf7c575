package status

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/search"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Get())

	f.Set(1.5)
	assert.Equal(t, 4.0, f.Add(2.5))
	assert.Equal(t, 4.0, f.Max(3))
	assert.Equal(t, 9.0, f.Max(9))
	assert.Equal(t, 9.0, f.Get())
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				f.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 8000.0, f.Get())
}

func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	assert.False(t, m.Has("a"))

	a := m.Get("a")
	a.Add(3)
	assert.Same(t, a, m.Get("a"))
	assert.True(t, m.Has("a"))
	assert.Equal(t, int64(3), m.Get("a").Load())
}

func TestMetricMapAllSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		m.Get(k)
	}

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, keys)
	assert.Equal(t, 3, m.Count())

	var first []string
	for k := range m.All() {
		first = append(first, k)
		break
	}
	assert.Equal(t, []string{"alpha"}, first)
}

func TestRecorderTotals(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)

	clock := time.Unix(0, 0)
	rec.now = func() time.Time { return clock }

	rec.CellPlaced(grid.Point{}, grid.Start)
	rec.CellPlaced(grid.Point{X: 1}, grid.End)
	rec.MazeStamped(40)

	rec.SearchStarted(grid.Point{})
	clock = clock.Add(30 * time.Millisecond)
	rec.SearchFinished(search.Found, search.Stats{Steps: 5, Checked: 4}, search.Route{{}, {X: 1}})
	rec.CellRevealed(grid.Point{}, 1)
	rec.CellRevealed(grid.Point{X: 1}, 0)

	rec.Reset()
	rec.SearchStarted(grid.Point{})
	clock = clock.Add(10 * time.Millisecond)
	rec.SearchFinished(search.Exhausted, search.Stats{Steps: 2, Checked: 1}, nil)

	rec.SearchStarted(grid.Point{})
	rec.SearchFinished(search.Cancelled, search.Stats{Steps: 1}, nil)

	snap := reg.Snapshot()
	require.Equal(t, reg.TotalCount(), len(snap))
	assert.Equal(t, int64(2), snap[MetricCellsPlaced])
	assert.Equal(t, int64(1), snap[MetricMazes])
	assert.Equal(t, int64(1), snap[MetricResets])
	assert.Equal(t, int64(3), snap[MetricSearches])
	assert.Equal(t, int64(1), snap[MetricFound])
	assert.Equal(t, int64(1), snap[MetricExhausted])
	assert.Equal(t, int64(1), snap[MetricCancelled])
	assert.Equal(t, int64(5), snap[MetricCellsChecked])
	assert.Equal(t, int64(8), snap[MetricSteps])
	assert.Equal(t, int64(2), snap[MetricRevealed])
	assert.Equal(t, 40.0, snap[MetricSearchMs])
	assert.Equal(t, 30.0, snap[MetricSearchMsMax])
	assert.Same(t, reg, rec.Registry())
}
