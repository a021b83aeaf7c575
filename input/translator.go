// Package input turns tcell events into host loop events.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathviz/constants"
	"github.com/lixenwraith/pathviz/engine"
)

// Translator maps raw terminal events to engine events
// It tracks the primary button so a held or dragged press fires only once
type Translator struct {
	held bool
}

// NewTranslator creates a translator with the button released
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the engine event for ev, false when ev has no meaning here
func (t *Translator) Translate(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasHeld := t.held
		t.held = pressed
		if !pressed || wasHeld {
			return engine.Event{}, false
		}
		x, y := ev.Position()
		return engine.Event{Kind: engine.EventPointer, X: x, Y: y}, true

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return engine.Event{Kind: engine.EventQuit}, true
		case tcell.KeyEscape:
			return engine.Event{Kind: engine.EventCancel}, true
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
				return engine.Event{Kind: engine.EventQuit}, true
			}
			switch ev.Rune() {
			case constants.KeySearch:
				return engine.Event{Kind: engine.EventSearch}, true
			case constants.KeyQuit:
				return engine.Event{Kind: engine.EventQuit}, true
			case constants.KeyReset:
				return engine.Event{Kind: engine.EventReset}, true
			case constants.KeyMaze:
				return engine.Event{Kind: engine.EventMaze}, true
			}
		}
	}
	return engine.Event{}, false
}

// Poll forwards translated events from screen to out until the screen is
// finalized, then closes out. Resize events resynchronize the screen.
func Poll(screen tcell.Screen, out chan<- engine.Event) {
	defer close(out)

	t := NewTranslator()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		if e, ok := t.Translate(ev); ok {
			out <- e
		}
	}
}
