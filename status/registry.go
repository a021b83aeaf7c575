package status

import "sync/atomic"

// Metric names written by Recorder
const (
	MetricCellsPlaced  = "cells_placed"
	MetricMazes        = "mazes"
	MetricResets       = "resets"
	MetricSearches     = "searches"
	MetricFound        = "found"
	MetricExhausted    = "exhausted"
	MetricCancelled    = "cancelled"
	MetricCellsChecked = "cells_checked"
	MetricSteps        = "steps"
	MetricRevealed     = "cells_revealed"
	MetricSearchMs     = "search_ms_total"
	MetricSearchMsMax  = "search_ms_max"
)

// Registry groups session counters by value type
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into a flat map, suitable as log fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	for k, v := range r.Ints.All() {
		out[k] = v.Load()
	}
	for k, v := range r.Floats.All() {
		out[k] = v.Get()
	}
	return out
}
