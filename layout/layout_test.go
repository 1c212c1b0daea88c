package layout

import (
	"testing"

	"github.com/raiscui/beautiful-mermaid/graph"
)

func buildChain(dir graph.GridDirection) *graph.Graph {
	g := graph.NewGraph(dir)
	g.AddNode("a", "Start", graph.ShapeRect)
	g.AddNode("b", "Middle", graph.ShapeRect)
	g.AddNode("c", "End", graph.ShapeRect)
	g.AddEdge(&graph.Edge{Source: "a", Target: "b", HasArrowEnd: true})
	g.AddEdge(&graph.Edge{Source: "b", Target: "c", HasArrowEnd: true})
	return g
}

func TestPlaceNodesLRRootAtColumnZero(t *testing.T) {
	g := buildChain(graph.LR)
	l := NewLayout(graph.LR, 2, 1)
	l.PlaceNodes(g, 0)
	root := l.NodeCell["a"]
	if root.Col != 0 {
		t.Fatalf("root column = %d, want 0", root.Col)
	}
}

func TestPlaceNodesChildAdvancesLevel(t *testing.T) {
	g := buildChain(graph.LR)
	l := NewLayout(graph.LR, 2, 1)
	l.PlaceNodes(g, 0)
	a, b, c := l.NodeCell["a"], l.NodeCell["b"], l.NodeCell["c"]
	if b.Col != a.Col+4 || c.Col != b.Col+4 {
		t.Fatalf("levels not spaced by 4: a=%v b=%v c=%v", a, b, c)
	}
}

func TestPlaceNodesMarginShiftsAllCells(t *testing.T) {
	g := buildChain(graph.LR)
	l0 := NewLayout(graph.LR, 2, 1)
	l0.PlaceNodes(g, 0)
	l2 := NewLayout(graph.LR, 2, 1)
	l2.PlaceNodes(g, 2)
	for _, id := range []string{"a", "b", "c"} {
		c0, c2 := l0.NodeCell[id], l2.NodeCell[id]
		if c2.Col != c0.Col+2 || c2.Row != c0.Row+2 {
			t.Fatalf("node %s not uniformly shifted: %v vs %v", id, c0, c2)
		}
	}
}

func TestSizeColumnsAndRowsUsesLabelWidth(t *testing.T) {
	g := buildChain(graph.LR)
	l := NewLayout(graph.LR, 2, 1)
	l.PlaceNodes(g, 0)
	l.SizeColumnsAndRows(g)
	cell := l.NodeCell["b"]
	wantWidth := 2*2 + displayWidth("Middle")
	if l.ColumnWidth[cell.Col+1] != wantWidth {
		t.Fatalf("middle column width = %d, want %d", l.ColumnWidth[cell.Col+1], wantWidth)
	}
}

func TestInflateForPathFillsMissingColumns(t *testing.T) {
	l := NewLayout(graph.LR, 4, 2)
	l.InflateForPath([]graph.GridCoord{{X: 50, Y: 50}})
	if l.ColumnWidth[50] != 2 {
		t.Fatalf("inflated column width = %d, want 2 (paddingX/2)", l.ColumnWidth[50])
	}
	if l.RowHeight[50] != 1 {
		t.Fatalf("inflated row height = %d, want 1 (paddingY/2)", l.RowHeight[50])
	}
}

func TestProjectDrawingCoordSumsPrecedingSizes(t *testing.T) {
	l := NewLayout(graph.LR, 2, 1)
	l.ColumnWidth[0] = 3
	l.ColumnWidth[1] = 5
	l.RowHeight[0] = 2
	dc := l.ProjectDrawingCoord(Cell{Col: 2, Row: 1})
	if dc.X != 8 {
		t.Fatalf("x = %d, want 8", dc.X)
	}
	if dc.Y != 2 {
		t.Fatalf("y = %d, want 2", dc.Y)
	}
}
