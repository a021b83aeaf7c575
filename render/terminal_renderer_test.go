package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathviz/constants"
	"github.com/lixenwraith/pathviz/editor"
	"github.com/lixenwraith/pathviz/engine"
	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/search"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func background(t *testing.T, s tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestStateColor_CanonicalMapping(t *testing.T) {
	tests := []struct {
		state grid.State
		r, g  int32
		b     int32
	}{
		{grid.Blank, 255, 255, 255},
		{grid.Obstacle, 0, 0, 0},
		{grid.Checked, 255, 0, 0},
		{grid.Path, 0, 255, 0},
		{grid.Start, 0, 0, 255},
		{grid.End, 255, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			r, g, b := StateColor(tt.state).RGB()
			assert.Equal(t, [3]int32{tt.r, tt.g, tt.b}, [3]int32{r, g, b})
		})
	}
}

func TestRender_CellsUsePitchAndStateColor(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, grid.Start))
	require.NoError(t, g.Set(1, 0, grid.Obstacle))
	require.NoError(t, g.Set(2, 1, grid.End))

	screen := newScreen(t, constants.ScreenWidth(3, 2), constants.ScreenHeight(2, 1))
	r := NewTerminalRenderer(screen, 2, 1)
	r.Render(engine.View{Grid: g})

	cases := []struct {
		x, y int
		want tcell.Color
	}{
		{0, 0, RgbStart}, {1, 0, RgbStart},
		{2, 0, RgbObstacle}, {3, 0, RgbObstacle},
		{4, 0, RgbBlank}, {5, 0, RgbBlank},
		{4, 1, RgbEnd}, {5, 1, RgbEnd},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, background(t, screen, c.x, c.y), "screen (%d,%d)", c.x, c.y)
	}

	ch, _, _, _ := screen.GetContent(2, 0)
	assert.Equal(t, constants.SeparatorGlyph, ch, "first column carries the grid line")
	ch, _, _, _ = screen.GetContent(3, 0)
	assert.Equal(t, ' ', ch)
}

func TestRender_TallPitch(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, grid.Checked))

	screen := newScreen(t, 6, 7)
	NewTerminalRenderer(screen, 3, 3).Render(engine.View{Grid: g})

	for y := 3; y < 6; y++ {
		for x := 3; x < 6; x++ {
			assert.Equal(t, RgbChecked, background(t, screen, x, y), "screen (%d,%d)", x, y)
		}
	}
	assert.Equal(t, RgbBlank, background(t, screen, 2, 2))
}

func TestRender_SeparatorLines(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	screen := newScreen(t, 6, 7)
	NewTerminalRenderer(screen, 3, 3).Render(engine.View{Grid: g})

	glyph := func(x, y int) rune {
		ch, _, _, _ := screen.GetContent(x, y)
		return ch
	}
	for y := 0; y < 6; y++ {
		assert.Equal(t, constants.SeparatorGlyph, glyph(0, y), "column 0 row %d", y)
		assert.Equal(t, constants.SeparatorGlyph, glyph(3, y), "column 3 row %d", y)
	}
	for _, x := range []int{1, 2, 4, 5} {
		assert.Equal(t, constants.SeparatorFloorGlyph, glyph(x, 2), "floor of top row at column %d", x)
		assert.Equal(t, constants.SeparatorFloorGlyph, glyph(x, 5), "floor of bottom row at column %d", x)
		assert.Equal(t, ' ', glyph(x, 1))
		assert.Equal(t, ' ', glyph(x, 4))
	}
}

func TestRender_SingleRowPitchHasNoFloor(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	screen := newScreen(t, 4, 3)
	NewTerminalRenderer(screen, 2, 1).Render(engine.View{Grid: g})

	for y := 0; y < 2; y++ {
		ch, _, _, _ := screen.GetContent(1, y)
		assert.Equal(t, ' ', ch)
	}
}

func TestRender_StatusBar(t *testing.T) {
	g, err := grid.New(20, 2)
	require.NoError(t, err)
	screen := newScreen(t, 40, 3)
	r := NewTerminalRenderer(screen, 2, 1)

	r.Render(engine.View{Grid: g, Phase: engine.PhaseEditing, Stage: editor.PlaceEnd})
	line := rowText(screen, 2, 40)
	assert.Contains(t, line, "editing")
	assert.Contains(t, line, "click to place END")
	assert.Equal(t, RgbStatusBg, background(t, screen, 39, 2))
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		view engine.View
		want []string
	}{
		{"PlaceStart", engine.View{Phase: engine.PhaseEditing}, []string{constants.StatusEditingStart}},
		{"PlaceWalls", engine.View{Phase: engine.PhaseEditing, Stage: editor.PlaceObstacles}, []string{"SPACE"}},
		{"Searching", engine.View{Phase: engine.PhaseSearching, Stats: search.Stats{Steps: 4, Checked: 9, Frontier: 3}}, []string{"steps 4", "checked 9", "frontier 3"}},
		{"Revealing", engine.View{Phase: engine.PhaseRevealing, RouteLen: 7, Remaining: 2}, []string{"length 7", "remaining 2"}},
		{"DoneFound", engine.View{Phase: engine.PhaseDone, Outcome: search.Found, RouteLen: 7}, []string{"path found", "length 7"}},
		{"DoneNoPath", engine.View{Phase: engine.PhaseDone, Outcome: search.Exhausted}, []string{constants.StatusNoPath}},
		{"DoneCancelled", engine.View{Phase: engine.PhaseDone, Outcome: search.Cancelled}, []string{constants.StatusCancelled}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusText(tt.view)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}
