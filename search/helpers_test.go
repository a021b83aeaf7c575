package search

import (
	"testing"

	"github.com/lixenwraith/pathviz/grid"
	"github.com/stretchr/testify/require"
)

// parseGrid builds a grid from rows of '.', '#', 'x', 'S', 'E'
func parseGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Width(), "row %d", y)
		for x, c := range row {
			var s grid.State
			switch c {
			case '.':
				s = grid.Blank
			case '#':
				s = grid.Obstacle
			case 'x':
				s = grid.Checked
			case 'S':
				s = grid.Start
			case 'E':
				s = grid.End
			default:
				t.Fatalf("unknown cell %q at (%d,%d)", c, x, y)
			}
			require.NoError(t, g.Set(x, y, s))
		}
	}
	return g
}

func snapshot(g *grid.Grid) []grid.State {
	var out []grid.State
	for _, s := range g.All() {
		out = append(out, s)
	}
	return out
}

func pts(xy ...int) Route {
	r := make(Route, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		r = append(r, grid.Point{X: xy[i], Y: xy[i+1]})
	}
	return r
}
