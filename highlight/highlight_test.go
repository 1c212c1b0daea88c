package highlight

import "testing"

func TestMermaidSourceASCIIPassthrough(t *testing.T) {
	src := "flowchart LR\nA-->B"
	out, err := MermaidSource(src, true)
	if err != nil {
		t.Fatal(err)
	}
	if out != src {
		t.Fatalf("ascii mode must pass text through unchanged, got %q", out)
	}
}

func TestMermaidSourceUnicodeProducesOutput(t *testing.T) {
	src := "flowchart LR\nA-->B"
	out, err := MermaidSource(src, false)
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Fatal("expected non-empty highlighted output")
	}
}
