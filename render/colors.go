package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathviz/grid"
)

// RGB color definitions for cell states
var (
	RgbBlank    = tcell.NewRGBColor(255, 255, 255) // White
	RgbObstacle = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbChecked  = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbPath     = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbStart    = tcell.NewRGBColor(0, 0, 255)     // Blue
	RgbEnd      = tcell.NewRGBColor(255, 255, 0)   // Yellow

	RgbSeparator = tcell.NewRGBColor(0, 0, 0)       // Grid lines
	RgbStatusBar = tcell.NewRGBColor(255, 255, 255) // Status text
	RgbStatusBg  = tcell.NewRGBColor(26, 27, 38)    // Status background
	RgbStatusHot = tcell.NewRGBColor(255, 165, 0)   // Phase label
)

// StateColor returns the fill color for a cell state; it depends on nothing else
func StateColor(s grid.State) tcell.Color {
	switch s {
	case grid.Obstacle:
		return RgbObstacle
	case grid.Checked:
		return RgbChecked
	case grid.Path:
		return RgbPath
	case grid.Start:
		return RgbStart
	case grid.End:
		return RgbEnd
	default:
		return RgbBlank
	}
}
