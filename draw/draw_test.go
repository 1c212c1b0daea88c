package draw

import (
	"strings"
	"testing"

	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/graph"
)

func TestDrawBoxHasCornersAndLabel(t *testing.T) {
	n := &graph.Node{ID: "a", Label: "Hi", Shape: graph.ShapeRect}
	c := DrawBox(n, 6, 3, false, "Hi")
	s := canvas.CanvasToString(c)
	if !strings.Contains(s, "┌") || !strings.Contains(s, "┘") {
		t.Fatalf("missing corners: %q", s)
	}
	if !strings.Contains(s, "Hi") {
		t.Fatalf("missing label: %q", s)
	}
}

func TestDrawBoxASCIIFallback(t *testing.T) {
	n := &graph.Node{ID: "a", Shape: graph.ShapeRound}
	c := DrawBox(n, 4, 3, true, "")
	s := canvas.CanvasToString(c)
	if strings.ContainsAny(s, "╭╮╰╯") {
		t.Fatalf("ascii mode must not emit unicode corners: %q", s)
	}
}

func TestDrawEdgePathStraightLine(t *testing.T) {
	base := canvas.MkCanvas(10, 5)
	path := []graph.DrawingCoord{{X: 1, Y: 2}, {X: 8, Y: 2}}
	DrawEdgePath(base, path, graph.StyleSolid, false, true, graph.Right, graph.Right, false)
	if base.Get(4, 2) != '─' {
		t.Fatalf("expected horizontal stroke, got %q", base.Get(4, 2))
	}
	if base.Get(8, 2) != '►' {
		t.Fatalf("expected arrowhead at end, got %q", base.Get(8, 2))
	}
}

func TestDrawEdgePathCorner(t *testing.T) {
	base := canvas.MkCanvas(10, 10)
	path := []graph.DrawingCoord{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 5}}
	DrawEdgePath(base, path, graph.StyleSolid, false, false, graph.Right, graph.Down, false)
	if base.Get(5, 1) == '─' || base.Get(5, 1) == '│' {
		t.Fatalf("expected a corner glyph at the bend, got %q", base.Get(5, 1))
	}
}

func TestForbiddenCellsFlagsArrowheadsAndJunctions(t *testing.T) {
	c := canvas.MkCanvas(5, 5)
	c.Set(2, 2, '►')
	c.Set(3, 3, '┼')
	forbidden := ForbiddenCells(c)
	if !forbidden[[2]int{2, 2}] {
		t.Fatal("arrowhead cell should be forbidden")
	}
	if !forbidden[[2]int{3, 3}] {
		t.Fatal("junction cell should be forbidden")
	}
}

func TestPlaceLabelDropsRatherThanOverwritesProtectedCells(t *testing.T) {
	base := canvas.MkCanvas(10, 1)
	for x := 0; x < 10; x++ {
		base.Set(x, 0, '►')
	}
	forbidden := map[[2]int]bool{}
	for x := 0; x < 10; x++ {
		forbidden[[2]int{x, 0}] = true
	}
	placeLabel(base, "Hi", graph.DrawingCoord{X: 0, Y: 0}, graph.DrawingCoord{X: 9, Y: 0}, forbidden, 10)
	s := canvas.CanvasToString(base)
	if strings.Contains(s, "Hi") {
		t.Fatalf("label must be dropped when every position is forbidden, got %q", s)
	}
	for x := 0; x < 10; x++ {
		if base.Get(x, 0) != '►' {
			t.Fatalf("protected cell at %d overwritten: %q", x, s)
		}
	}
}

func TestCompositeRunsDeambiguation(t *testing.T) {
	nodes := []NodeDraw{
		{Node: &graph.Node{ID: "a", Label: "A", Shape: graph.ShapeRect}, At: graph.DrawingCoord{X: 0, Y: 0}, W: 5, H: 3},
		{Node: &graph.Node{ID: "b", Label: "B", Shape: graph.ShapeRect}, At: graph.DrawingCoord{X: 10, Y: 0}, W: 5, H: 3},
	}
	edges := []EdgeDraw{
		{Path: []graph.DrawingCoord{{X: 4, Y: 1}, {X: 10, Y: 1}}, HasEnd: true, EndDir: graph.Right},
	}
	c := Composite(20, 5, false, nil, nodes, edges)
	s := canvas.CanvasToString(c)
	if strings.Contains(s, "┼") {
		t.Fatalf("composite output must not contain residual crossings: %q", s)
	}
}
