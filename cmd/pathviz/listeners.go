package main

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pathviz/engine"
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/search"
)

// logListener records every game transition; each search gets a run ID
type logListener struct {
	log *logrus.Logger
	run *logrus.Entry
}

func newLogListener(log *logrus.Logger) *logListener {
	return &logListener{log: log, run: logrus.NewEntry(log)}
}

func (l *logListener) CellPlaced(p grid.Point, s grid.State) {
	l.log.WithFields(logrus.Fields{"cell": p.String(), "state": s.String()}).Debug("cell placed")
}

func (l *logListener) MazeStamped(walls int) {
	l.log.WithField("walls", walls).Info("maze stamped")
}

func (l *logListener) SearchStarted(start grid.Point) {
	l.run = l.log.WithField("run", uuid.NewString())
	l.run.WithField("start", start.String()).Info("search started")
}

func (l *logListener) SearchFinished(st search.Status, stats search.Stats, route search.Route) {
	l.run.WithFields(logrus.Fields{
		"status":  st.String(),
		"steps":   stats.Steps,
		"checked": stats.Checked,
		"length":  len(route),
	}).Info("search finished")
}

func (l *logListener) CellRevealed(p grid.Point, remaining int) {
	if remaining == 0 {
		l.run.WithField("cell", p.String()).Info("route revealed")
	}
}

func (l *logListener) Reset() {
	l.log.Info("grid reset")
	l.run = logrus.NewEntry(l.log)
}

// cuePlayer is the subset of audio.SoundManager the game drives
type cuePlayer interface {
	PlayPlace()
	PlayReveal()
	PlayFound()
	PlayNoPath()
}

// soundListener maps transitions to audio cues
type soundListener struct {
	engine.NopListener
	cues cuePlayer
}

func newSoundListener(cues cuePlayer) *soundListener {
	return &soundListener{cues: cues}
}

func (s *soundListener) CellPlaced(grid.Point, grid.State) { s.cues.PlayPlace() }

func (s *soundListener) CellRevealed(grid.Point, int) { s.cues.PlayReveal() }

func (s *soundListener) SearchFinished(st search.Status, _ search.Stats, _ search.Route) {
	switch st {
	case search.Found:
		s.cues.PlayFound()
	case search.Exhausted:
		s.cues.PlayNoPath()
	}
}
