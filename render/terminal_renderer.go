// Package render draws the grid and a status line onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathviz/constants"
	"github.com/lixenwraith/pathviz/editor"
	"github.com/lixenwraith/pathviz/engine"
	"github.com/lixenwraith/pathviz/search"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	pitchX int
	pitchY int
}

// NewTerminalRenderer creates a renderer drawing each cell as pitchX x pitchY terminal cells
func NewTerminalRenderer(screen tcell.Screen, pitchX, pitchY int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		pitchX: max(pitchX, 1),
		pitchY: max(pitchY, 1),
	}
}

// Render draws one full frame and flushes it
func (r *TerminalRenderer) Render(v engine.View) {
	r.screen.Clear()
	r.drawGrid(v)
	r.drawStatusBar(v)
	r.screen.Show()
}

// drawGrid fills every cell with its state color and overlays separator glyphs
// so the cells read as a fixed-pitch grid: a vertical line in the first column
// and, when a cell is taller than one row, a horizontal line along the last row
func (r *TerminalRenderer) drawGrid(v engine.View) {
	floor := r.pitchY - 1
	for p, s := range v.Grid.All() {
		style := tcell.StyleDefault.Background(StateColor(s)).Foreground(RgbSeparator)
		x0, y0 := p.X*r.pitchX, p.Y*r.pitchY
		for dy := 0; dy < r.pitchY; dy++ {
			for dx := 0; dx < r.pitchX; dx++ {
				r.screen.SetContent(x0+dx, y0+dy, separator(dx, dy, floor), nil, style)
			}
		}
	}
}

func separator(dx, dy, floor int) rune {
	switch {
	case dx == 0:
		return constants.SeparatorGlyph
	case floor > 0 && dy == floor:
		return constants.SeparatorFloorGlyph
	default:
		return ' '
	}
}

func (r *TerminalRenderer) drawStatusBar(v engine.View) {
	y := v.Grid.Height() * r.pitchY
	width := v.Grid.Width() * r.pitchX
	if sw, _ := r.screen.Size(); sw > width {
		width = sw
	}

	base := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, base)
	}

	x := drawText(r.screen, 0, y, " "+v.Phase.String()+" ", base.Foreground(RgbStatusHot).Bold(true))
	drawText(r.screen, x+1, y, StatusText(v), base)
}

// StatusText describes the current phase for the status line
func StatusText(v engine.View) string {
	switch v.Phase {
	case engine.PhaseEditing:
		switch v.Stage {
		case editor.PlaceStart:
			return constants.StatusEditingStart
		case editor.PlaceEnd:
			return constants.StatusEditingEnd
		default:
			return constants.StatusEditingWalls
		}
	case engine.PhaseSearching:
		return fmt.Sprintf("%s  steps %d  checked %d  frontier %d",
			constants.StatusSearching, v.Stats.Steps, v.Stats.Checked, v.Stats.Frontier)
	case engine.PhaseRevealing:
		return fmt.Sprintf("%s  length %d  remaining %d", constants.StatusRevealing, v.RouteLen, v.Remaining)
	default:
		var label string
		switch v.Outcome {
		case search.Found:
			label = fmt.Sprintf("%s  length %d", constants.StatusRevealing, v.RouteLen)
		case search.Cancelled:
			label = constants.StatusCancelled
		default:
			label = constants.StatusNoPath
		}
		return fmt.Sprintf("%s  checked %d  %s", label, v.Stats.Checked, constants.StatusDoneHint)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
