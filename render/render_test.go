package render

import (
	"strings"
	"testing"

	"github.com/raiscui/beautiful-mermaid/config"
)

func TestRenderSimpleChainProducesNonEmptyCanvas(t *testing.T) {
	src := "flowchart LR\n  A[Start] --> B[Middle] --> C[End]\n"
	result, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Canvas == "" {
		t.Fatal("expected non-empty canvas")
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Diagnostics)
	}
	for _, want := range []string{"Start", "Middle", "End"} {
		if !strings.Contains(result.Canvas, want) {
			t.Fatalf("canvas missing label %q:\n%s", want, result.Canvas)
		}
	}
}

func TestRenderTopDownDirection(t *testing.T) {
	src := "flowchart TD\n  A --> B\n  A --> C\n"
	result, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Canvas == "" {
		t.Fatal("expected non-empty canvas")
	}
}

func TestRenderSelfLoop(t *testing.T) {
	src := "flowchart LR\n  A --> A\n"
	result, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Canvas == "" {
		t.Fatal("expected non-empty canvas for self loop")
	}
}

func TestRenderEmptyGraphYieldsEmptyCanvas(t *testing.T) {
	result, err := Render("flowchart LR\n", config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Canvas != "" {
		t.Fatalf("expected empty canvas, got %q", result.Canvas)
	}
}

func TestRenderInvalidSourceReturnsError(t *testing.T) {
	_, err := Render("not a flowchart at all {{{", config.Default())
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRenderRLFlipsOutput(t *testing.T) {
	src := "flowchart RL\n  A --> B\n"
	result, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Canvas == "" {
		t.Fatal("expected non-empty canvas")
	}
}

func TestRenderThenReverseRoundTrips(t *testing.T) {
	src := "flowchart LR\n  A --> B\n"
	result, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	mermaid, err := ReverseRender(result.Canvas, "LR")
	if err != nil {
		t.Fatalf("ReverseRender returned error: %v", err)
	}
	if !strings.Contains(mermaid, "A") || !strings.Contains(mermaid, "B") {
		t.Fatalf("reversed Mermaid missing node labels: %s", mermaid)
	}
}

func TestRenderSubgraphLayoutDoesNotPanic(t *testing.T) {
	src := `flowchart LR
  subgraph cluster1
    A --> B
  end
  C --> A
`
	result, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if result.Canvas == "" {
		t.Fatal("expected non-empty canvas")
	}
}
