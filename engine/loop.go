package engine

import (
	"context"
	"time"
)

// Renderer draws a snapshot of the game; called once per tick and once per search step
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(View)

func (f RendererFunc) Render(v View) { f(v) }

// Run is the host loop. Editing and playback advance on a fixed-rate ticker.
// While searching the loop yields after every pathfinder step instead: it
// checks for a pending event, steps once and renders, without waiting for
// the ticker. Returns nil on quit, closed events or ctx cancellation.
func (g *Game) Run(ctx context.Context, events <-chan Event, r Renderer, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	r.Render(g.View())

	for {
		if g.phase == PhaseSearching {
			select {
			case <-ctx.Done():
				g.cancelSearch()
				return nil
			case ev, ok := <-events:
				if !ok || !g.HandleEvent(ev) {
					g.cancelSearch()
					return nil
				}
			default:
			}

			if err := g.Update(); err != nil {
				return err
			}
			r.Render(g.View())
			continue
		}

		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok || !g.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if err := g.Update(); err != nil {
				return err
			}
			r.Render(g.View())
		}
	}
}
