package stitch

import (
	"testing"

	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/graph"
)

func TestFindConnectedComponentsCyclicGraph(t *testing.T) {
	g := graph.NewGraph(graph.LR)
	g.AddNode("a", "A", graph.ShapeRect)
	g.AddNode("b", "B", graph.ShapeRect)
	g.AddNode("c", "C", graph.ShapeRect)
	g.AddEdge(&graph.Edge{Source: "a", Target: "b"})
	g.AddEdge(&graph.Edge{Source: "b", Target: "c"})
	g.AddEdge(&graph.Edge{Source: "c", Target: "a"})

	comps := FindConnectedComponents(g)
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	if len(comps[0].NodeIDs) != 3 {
		t.Fatalf("expected all 3 nodes in one component, got %v", comps[0].NodeIDs)
	}
	if len(comps[0].EdgeIdxs) != 3 {
		t.Fatalf("expected all 3 edge indices assigned, got %v", comps[0].EdgeIdxs)
	}
}

func TestFindConnectedComponentsPartitionsDisjointGraphs(t *testing.T) {
	g := graph.NewGraph(graph.LR)
	g.AddNode("a", "A", graph.ShapeRect)
	g.AddNode("b", "B", graph.ShapeRect)
	g.AddNode("x", "X", graph.ShapeRect)
	g.AddNode("y", "Y", graph.ShapeRect)
	g.AddEdge(&graph.Edge{Source: "a", Target: "b"})
	g.AddEdge(&graph.Edge{Source: "x", Target: "y"})

	comps := FindConnectedComponents(g)
	if len(comps) != 2 {
		t.Fatalf("expected 2 components, got %d", len(comps))
	}
}

func TestStitchComponentLayoutsLRStacksVertically(t *testing.T) {
	c1 := canvas.MkCanvas(99, 49)
	c2 := canvas.MkCanvas(79, 69)
	out := StitchComponentLayouts([]ComponentLayout{
		{Canvas: c1, Width: 100, Height: 50},
		{Canvas: c2, Width: 80, Height: 70},
	}, graph.LR, 20)
	w, h := out.GetCanvasSize()
	if w+1 != 100 {
		t.Fatalf("width = %d, want 100", w+1)
	}
	if h+1 != 140 {
		t.Fatalf("height = %d, want 140 (50+20+70)", h+1)
	}
}

func TestStitchComponentLayoutsTDStacksHorizontally(t *testing.T) {
	c1 := canvas.MkCanvas(99, 49)
	c2 := canvas.MkCanvas(79, 69)
	out := StitchComponentLayouts([]ComponentLayout{
		{Canvas: c1, Width: 100, Height: 50},
		{Canvas: c2, Width: 80, Height: 70},
	}, graph.TD, 20)
	w, h := out.GetCanvasSize()
	if w+1 != 200 {
		t.Fatalf("width = %d, want 200 (100+20+80)", w+1)
	}
	if h+1 != 70 {
		t.Fatalf("height = %d, want 70 (max)", h+1)
	}
}
