package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pathviz/audio"
	"github.com/lixenwraith/pathviz/config"
	"github.com/lixenwraith/pathviz/constants"
	"github.com/lixenwraith/pathviz/engine"
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/input"
	"github.com/lixenwraith/pathviz/render"
	"github.com/lixenwraith/pathviz/status"
)

// newScreen is replaced in tests that exercise startup without a terminal
var newScreen = tcell.NewScreen

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code; deferred cleanup such as closing the
// log file runs before main calls os.Exit
func realMain(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathviz: %v\n", err)
		return 2
	}

	log := logrus.New()
	if f := setupLogging(log, cfg.Debug, cfg.LogDir); f != nil {
		defer f.Close()
	}

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("exited with error")
		fmt.Fprintf(os.Stderr, "pathviz: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg config.Config, log *logrus.Logger) error {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before reporting
	crash := func(where string, r any) {
		screen.Fini()
		log.WithField("panic", r).Error(where + " crashed")
		fmt.Fprintf(os.Stderr, "\n\x1b[31mPATHVIZ %s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("HOST LOOP", r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()
	if w, h := screen.Size(); w < constants.ScreenWidth(cfg.Width, cfg.PitchX) || h < constants.ScreenHeight(cfg.Height, cfg.PitchY) {
		log.WithFields(logrus.Fields{"cols": w, "rows": h}).Warn("terminal smaller than grid, edges are clipped")
	}

	game := engine.NewGame(g, engine.Options{
		PitchX:       cfg.PitchX,
		PitchY:       cfg.PitchY,
		MazeSeed:     cfg.Seed,
		MazeBraiding: constants.MazeBraiding,
	})
	game.AddListener(newLogListener(log))
	metrics := status.NewRecorder(status.NewRegistry())
	game.AddListener(metrics)
	defer func() {
		log.WithFields(logrus.Fields(metrics.Registry().Snapshot())).Info("session totals")
	}()

	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the visualizer runs without sound
			log.WithError(err).Warn("audio initialization failed")
		} else {
			defer sm.Cleanup()
			game.AddListener(newSoundListener(sm))
		}
	}

	events := make(chan engine.Event, constants.EventQueueSize)
	// Input polling uses a raw goroutine as it blocks on the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		input.Poll(screen, events)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"tps":    cfg.TPS,
	}).Info("starting")

	renderer := render.NewTerminalRenderer(screen, cfg.PitchX, cfg.PitchY)
	return game.Run(ctx, events, renderer, time.Second/time.Duration(cfg.TPS))
}
