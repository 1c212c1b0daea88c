// Package draw implements the character-canvas compositing stage of
// spec.md §4.5: node boxes, edge paths, corners, arrowheads, port markers,
// edge/subgraph labels, composited in the eight-step fixed order, followed
// by crossing de-ambiguation.
package draw

import (
	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/graph"
)

type corners struct{ tl, tr, bl, br rune }

// cornersFor returns the four corner glyphs for a node shape, adapted from
// the teacher's rounded-panel-border convention (fur/box.go) generalized
// across spec.md's shape set, with an ASCII fallback.
func cornersFor(shape graph.Shape, ascii bool) corners {
	if ascii {
		return corners{'+', '+', '+', '+'}
	}
	switch shape {
	case graph.ShapeRound, graph.ShapeStadium, graph.ShapeCircle:
		return corners{'╭', '╮', '╰', '╯'}
	case graph.ShapeDiamond:
		return corners{'╱', '╲', '╲', '╱'}
	default: // ShapeRect, ShapeSubroutine
		return corners{'┌', '┐', '└', '┘'}
	}
}

func hLine(ascii bool) rune {
	if ascii {
		return '-'
	}
	return '─'
}

func vLine(ascii bool) rune {
	if ascii {
		return '|'
	}
	return '│'
}

// DrawBox paints a node's border and centred label onto a fresh overlay
// canvas of exactly (w, h) cells, anchored at (0,0). The caller offsets it
// onto the base canvas via canvas.MergeCanvases at the node's drawing
// coordinate.
func DrawBox(n *graph.Node, w, h int, ascii bool, label string) *canvas.Canvas {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	c := canvas.MkCanvas(w-1, h-1)
	cn := cornersFor(n.Shape, ascii)
	h0, v0 := hLine(ascii), vLine(ascii)

	for x := 1; x < w-1; x++ {
		c.Set(x, 0, h0)
		c.Set(x, h-1, h0)
	}
	for y := 1; y < h-1; y++ {
		c.Set(0, y, v0)
		c.Set(w-1, y, v0)
	}
	c.Set(0, 0, cn.tl)
	c.Set(w-1, 0, cn.tr)
	c.Set(0, h-1, cn.bl)
	c.Set(w-1, h-1, cn.br)

	if n.Shape == graph.ShapeSubroutine && !ascii {
		// Double vertical bars just inside the left/right borders.
		for y := 1; y < h-1; y++ {
			if w > 3 {
				c.Set(1, y, '‖')
				c.Set(w-2, y, '‖')
			}
		}
	}

	if label != "" {
		lw := canvas.StringWidth(label)
		startX := (w - lw) / 2
		if startX < 1 {
			startX = 1
		}
		startY := h / 2
		c.DrawText(startX, startY, label)
	}
	return c
}

// DrawSubgraphBorder paints a solid square-cornered rectangular border (the
// same glyphs as a rectangular node box) for a subgraph's bounding box, with
// its label centred on the top border.
func DrawSubgraphBorder(w, h int, ascii bool, label string) *canvas.Canvas {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	c := canvas.MkCanvas(w-1, h-1)
	h0, v0 := hLine(ascii), vLine(ascii)
	tl, tr, bl, br := rune('┌'), rune('┐'), rune('└'), rune('┘')
	if ascii {
		tl, tr, bl, br = '+', '+', '+', '+'
	}
	for x := 1; x < w-1; x++ {
		c.Set(x, 0, h0)
		c.Set(x, h-1, h0)
	}
	for y := 1; y < h-1; y++ {
		c.Set(0, y, v0)
		c.Set(w-1, y, v0)
	}
	c.Set(0, 0, tl)
	c.Set(w-1, 0, tr)
	c.Set(0, h-1, bl)
	c.Set(w-1, h-1, br)

	if label != "" {
		lw := canvas.StringWidth(label)
		startX := (w - lw) / 2
		if startX < 1 {
			startX = 1
		}
		c.DrawText(startX, 0, label)
	}
	return c
}
