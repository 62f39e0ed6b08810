package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/theted/aws-concept-map/core"
)

func newTestSurface(t *testing.T) (*cellSurface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 24)

	colors := map[string]string{"compute": "#f58536"}
	return newCellSurface(sim, colors), sim
}

func runeAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	return cells[y*w+x].Runes[0]
}

func TestDrawNodeBoxAndLabel(t *testing.T) {
	surface, sim := newTestSurface(t)

	surface.Clear()
	n := core.Node{Key: "ec2", Name: "EC2", Category: "compute"}
	surface.DrawNode(n, core.Rect{X: 5, Y: 5, Width: 10, Height: 3}, false, 1)
	surface.Flush()

	require.Equal(t, tcell.RuneULCorner, runeAt(t, sim, 5, 5))
	require.Equal(t, tcell.RuneLRCorner, runeAt(t, sim, 14, 7))
	require.Equal(t, tcell.RuneHLine, runeAt(t, sim, 8, 5))
	require.Equal(t, tcell.RuneVLine, runeAt(t, sim, 5, 6))

	// Label is centered on the middle row.
	row := ""
	for x := 6; x < 14; x++ {
		row += string(runeAt(t, sim, x, 6))
	}
	require.Contains(t, row, "EC2")
}

func TestDrawNodeTinyFallsBackToMarker(t *testing.T) {
	surface, sim := newTestSurface(t)

	surface.Clear()
	n := core.Node{Key: "s3", Name: "S3", Category: "storage"}
	surface.DrawNode(n, core.Rect{X: 10, Y: 10, Width: 2, Height: 1}, false, 1)
	surface.Flush()

	require.Equal(t, '▪', runeAt(t, sim, 11, 10))
}

func TestDrawConnectionWalksSegment(t *testing.T) {
	surface, sim := newTestSurface(t)

	surface.Clear()
	surface.DrawConnection(core.Point{X: 2, Y: 4}, core.Point{X: 8, Y: 4}, "compute", 0.65, false)
	surface.Flush()

	for x := 2; x <= 8; x++ {
		require.Equal(t, '·', runeAt(t, sim, x, 4), "cell %d", x)
	}
}

func TestDrawConnectionHighlightedUsesHeavyDot(t *testing.T) {
	surface, sim := newTestSurface(t)

	surface.Clear()
	surface.DrawConnection(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 3}, "compute", 1, true)
	surface.Flush()

	require.Equal(t, '•', runeAt(t, sim, 0, 0))
	require.Equal(t, '•', runeAt(t, sim, 3, 3))
}

func TestFlushDrawsStatusLine(t *testing.T) {
	surface, sim := newTestSurface(t)

	surface.Clear()
	surface.SetStatus("EC2 · Virtual servers")
	surface.Flush()

	line := ""
	for x := 0; x < 21; x++ {
		line += string(runeAt(t, sim, x, 23))
	}
	require.Equal(t, "EC2 · Virtual servers", line)
}

func TestDrawGroupTitleAboveBounds(t *testing.T) {
	surface, sim := newTestSurface(t)

	surface.Clear()
	g := core.CategoryGroup{Category: "compute", Keys: []string{"ec2"}}
	surface.DrawGroup(g, "Compute", core.Rect{X: 4, Y: 6, Width: 20, Height: 8}, 1)
	surface.Flush()

	title := ""
	for x := 4; x < 11; x++ {
		title += string(runeAt(t, sim, x, 4))
	}
	require.Equal(t, "Compute", title)
}
