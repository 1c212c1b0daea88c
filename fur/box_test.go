package fur

import (
	"strings"
	"testing"
)

func TestBoxRendersTitleAndBody(t *testing.T) {
	b := Box("Title", Text("hello"), 20)
	lines := b.Render(20)
	if len(lines) < 3 {
		t.Fatalf("expected top/content/bottom border, got %d lines", len(lines))
	}
	text := extractText(lines)
	if !strings.Contains(text, "Title") {
		t.Errorf("expected title in box, got %q", text)
	}
	if !strings.Contains(text, "hello") {
		t.Errorf("expected body in box, got %q", text)
	}
	if !strings.Contains(text, "╭") || !strings.Contains(text, "╰") {
		t.Errorf("expected box corners, got %q", text)
	}
}

func TestBoxWrapsLongBody(t *testing.T) {
	b := Box("", Text("one two three four five six seven"), 12)
	lines := b.Render(12)
	if len(lines) < 4 {
		t.Fatalf("expected wrapped body across multiple lines, got %d", len(lines))
	}
}

func TestBoxWithCustomBorderStyle(t *testing.T) {
	b := BoxWith("", Text("x"), 10, DefaultStyle().Foreground(ColorRed))
	lines := b.Render(10)
	if len(lines) == 0 {
		t.Fatal("expected rendered lines")
	}
}

func TestBoxWithGroupOfMarkupLines(t *testing.T) {
	b := Box("warnings", Group(
		Markup("[yellow]first[/]"),
		Markup("[yellow]second[/]"),
	), 30)
	lines := b.Render(30)
	text := extractText(lines)
	if !strings.Contains(text, "first") || !strings.Contains(text, "second") {
		t.Errorf("expected both grouped lines in box, got %q", text)
	}
}

func TestBoxEmptyBody(t *testing.T) {
	b := Box("empty", nil, 10)
	lines := b.Render(10)
	if len(lines) < 2 {
		t.Fatalf("expected at least top/bottom border, got %d lines", len(lines))
	}
}
