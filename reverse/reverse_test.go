package reverse

import (
	"strings"
	"testing"
)

const simpleDiagram = "" +
	"┌─────┐        ┌─────┐\n" +
	"│Start│───────►│ End │\n" +
	"└─────┘        └─────┘"

func TestBuildGridWidensAllRows(t *testing.T) {
	g := BuildGrid("ab\nc")
	if len(g.Rows[1]) != g.Width {
		t.Fatalf("row 1 not widened to %d: %d", g.Width, len(g.Rows[1]))
	}
}

func TestBuildGridInsertsPlaceholderAfterWideRune(t *testing.T) {
	g := BuildGrid("中a")
	if !g.IsPlaceholder(1, 0) {
		t.Fatal("expected placeholder cell after wide rune")
	}
	if g.At(2, 0) != 'a' {
		t.Fatalf("expected 'a' at column 2, got %q", g.At(2, 0))
	}
}

func TestDetectBoxesFindsTwoBoxes(t *testing.T) {
	g := BuildGrid(simpleDiagram)
	boxes := DetectBoxes(g)
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d: %+v", len(boxes), boxes)
	}
}

func TestDetectBoxesRejectsStructuralOnlyInterior(t *testing.T) {
	g := BuildGrid("┌───┐\n│   │\n└───┘")
	boxes := DetectBoxes(g)
	if len(boxes) != 0 {
		t.Fatalf("expected no boxes (blank interior), got %d", len(boxes))
	}
}

func TestParseEmitsFlowchartWithBothNodes(t *testing.T) {
	out, err := Parse(simpleDiagram, "LR")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "flowchart LR") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "End") || !strings.Contains(out, "Start") {
		t.Fatalf("missing node labels: %q", out)
	}
}

func TestDisambiguatePrefersSharedLabelFanIn(t *testing.T) {
	cands := []sourceCandidate{
		{box: 0, pathLen: 3, label: "ok"},
		{box: 1, pathLen: 4, label: "ok"},
	}
	out := Disambiguate(cands)
	if len(out) != 2 {
		t.Fatalf("expected both shared-label candidates retained, got %d", len(out))
	}
}

func TestDisambiguateSuppressesPseudoSelfLoop(t *testing.T) {
	cands := []sourceCandidate{
		{box: 0, pathLen: 10, isSelf: true},
		{box: 1, pathLen: 2, label: "go"},
	}
	out := Disambiguate(cands)
	if len(out) != 1 || out[0].box != 1 {
		t.Fatalf("expected self-loop suppressed, got %+v", out)
	}
}

func TestDisambiguatePicksShortestPathOnMismatch(t *testing.T) {
	cands := []sourceCandidate{
		{box: 0, pathLen: 6, label: "a"},
		{box: 1, pathLen: 3, label: "b"},
	}
	out := Disambiguate(cands)
	if len(out) != 1 || out[0].box != 1 {
		t.Fatalf("expected shortest path candidate, got %+v", out)
	}
}
