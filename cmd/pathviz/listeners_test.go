package main

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathviz/engine"
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/search"
)

var (
	_ engine.Listener = (*logListener)(nil)
	_ engine.Listener = (*soundListener)(nil)
)

type cueRecorder struct {
	played []string
}

func (c *cueRecorder) PlayPlace()  { c.played = append(c.played, "place") }
func (c *cueRecorder) PlayReveal() { c.played = append(c.played, "reveal") }
func (c *cueRecorder) PlayFound()  { c.played = append(c.played, "found") }
func (c *cueRecorder) PlayNoPath() { c.played = append(c.played, "nopath") }

func TestSoundListenerCues(t *testing.T) {
	rec := &cueRecorder{}
	l := newSoundListener(rec)

	l.CellPlaced(grid.Point{X: 1, Y: 1}, grid.Start)
	l.SearchStarted(grid.Point{X: 1, Y: 1})
	l.SearchFinished(search.Found, search.Stats{}, search.Route{{X: 1, Y: 1}})
	l.CellRevealed(grid.Point{X: 1, Y: 1}, 0)
	l.SearchFinished(search.Exhausted, search.Stats{}, nil)
	l.SearchFinished(search.Cancelled, search.Stats{}, nil)
	l.MazeStamped(12)
	l.Reset()

	assert.Equal(t, []string{"place", "found", "reveal", "nopath"}, rec.played)
}

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, buf
}

func TestLogListenerRunID(t *testing.T) {
	log, _ := newBufferedLogger()
	l := newLogListener(log)

	l.SearchStarted(grid.Point{X: 0, Y: 0})
	first, ok := l.run.Data["run"].(string)
	require.True(t, ok, "run field missing after search start")
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	l.SearchFinished(search.Found, search.Stats{Steps: 3, Checked: 2}, search.Route{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.Equal(t, first, l.run.Data["run"], "run ID must persist through the search")

	l.Reset()
	assert.NotContains(t, l.run.Data, "run")

	l.SearchStarted(grid.Point{X: 0, Y: 0})
	assert.NotEqual(t, first, l.run.Data["run"])
}

func TestLogListenerOutput(t *testing.T) {
	log, buf := newBufferedLogger()
	l := newLogListener(log)

	l.CellPlaced(grid.Point{X: 2, Y: 3}, grid.Obstacle)
	l.SearchStarted(grid.Point{X: 0, Y: 0})
	l.SearchFinished(search.Exhausted, search.Stats{Steps: 7, Checked: 6}, nil)

	out := buf.String()
	assert.Contains(t, out, `"msg":"cell placed"`)
	assert.Contains(t, out, `"state":"obstacle"`)
	assert.Contains(t, out, `"status":"exhausted"`)
	assert.Contains(t, out, `"checked":6`)
	assert.Contains(t, out, `"length":0`)
}
