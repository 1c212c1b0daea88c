package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReverseEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.mmd")
	canvasPath := filepath.Join(dir, "canvas.txt")
	outPath := filepath.Join(dir, "out.mmd")

	if err := os.WriteFile(inPath, []byte("flowchart LR\n  A[Start] --> B[End]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runRender([]string{"--in", inPath, "--out", canvasPath}); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if err := runReverse([]string{"--in", canvasPath, "--out", outPath, "--direction", "LR"}); err != nil {
		t.Fatalf("runReverse: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Start") || !strings.Contains(string(data), "End") {
		t.Fatalf("reversed Mermaid missing node labels: %s", data)
	}
}

func TestRunReverseEmptyCanvasProducesBareHeader(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "canvas.txt")
	outPath := filepath.Join(dir, "out.mmd")
	if err := os.WriteFile(inPath, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runReverse([]string{"--in", inPath, "--out", outPath, "--direction", "TD"}); err != nil {
		t.Fatalf("runReverse: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "flowchart TD") {
		t.Fatalf("expected direction header in output, got %q", data)
	}
}
