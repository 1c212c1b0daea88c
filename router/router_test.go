package router

import (
	"testing"

	"github.com/raiscui/beautiful-mermaid/graph"
)

func TestDetermineStartAndEndDirLR(t *testing.T) {
	pref, alt := determineStartAndEndDir(graph.LR, 10, 0)
	if pref.start != graph.Right || pref.end != graph.Left {
		t.Fatalf("got %v/%v", pref.start, pref.end)
	}
	if alt.start != graph.Down {
		t.Fatalf("alternative start = %v, want Down", alt.start)
	}
}

func TestDetermineStartAndEndDirTD(t *testing.T) {
	pref, _ := determineStartAndEndDir(graph.TD, 0, 10)
	if pref.start != graph.Down || pref.end != graph.Up {
		t.Fatalf("got %v/%v", pref.start, pref.end)
	}
}

func TestSelfLoopPair(t *testing.T) {
	p := selfLoopPair(graph.LR)
	if p.start != graph.Right || p.end != graph.Down {
		t.Fatalf("got %v/%v", p.start, p.end)
	}
	p = selfLoopPair(graph.TD)
	if p.start != graph.Down || p.end != graph.Right {
		t.Fatalf("got %v/%v", p.start, p.end)
	}
}

func TestRouteEdgeBoxesStraightLine(t *testing.T) {
	r := NewRouter(40, 40, graph.LR, false)
	fromBox := Box{X0: 4, Y0: 9, X1: 6, Y1: 11}
	toBox := Box{X0: 29, Y0: 9, X1: 31, Y1: 11}
	cand, ok := r.RouteEdgeBoxes(fromBox, toBox, 1, 2)
	if !ok {
		t.Fatal("expected a route")
	}
	if len(cand.Path) < 2 {
		t.Fatalf("path too short: %v", cand.Path)
	}
}

func TestRouteEdgeBoxesRecordsUsage(t *testing.T) {
	r := NewRouter(40, 40, graph.LR, false)
	fromBox := Box{X0: 4, Y0: 9, X1: 6, Y1: 11}
	toBox := Box{X0: 29, Y0: 9, X1: 31, Y1: 11}
	cand, ok := r.RouteEdgeBoxes(fromBox, toBox, 1, 2)
	if !ok {
		t.Fatal("expected a route")
	}
	if r.UsedPoints[cand.Path[0]] == 0 {
		t.Fatal("expected start port to record connectivity bits")
	}
}

func TestBuildSelfLoopProducesExcursion(t *testing.T) {
	r := NewRouter(40, 40, graph.LR, false)
	port := r.AStar.Idx(20, 20)
	cand, ok := r.BuildSelfLoop(port, 1, 1)
	if !ok {
		t.Fatal("expected a self-loop path")
	}
	if len(cand.Path) < 4 {
		t.Fatalf("self-loop too short to leave the box: %v", cand.Path)
	}
}

func TestSelectLabelLinePrefersFirstFittingSegment(t *testing.T) {
	r := NewRouter(40, 10, graph.LR, false)
	fromBox := Box{X0: 1, Y0: 4, X1: 3, Y1: 6}
	toBox := Box{X0: 34, Y0: 4, X1: 36, Y1: 6}
	cand, ok := r.RouteEdgeBoxes(fromBox, toBox, 1, 2)
	if !ok {
		t.Fatal("expected a route")
	}
	_, box, ok := SelectLabelLine(r.AStar, cand.Path, 5, 1, nil, nil)
	if !ok {
		t.Fatal("expected a label line to be chosen")
	}
	if box.X1 < box.X0 {
		t.Fatalf("invalid label box: %v", box)
	}
}
