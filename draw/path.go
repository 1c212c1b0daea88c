package draw

import (
	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/graph"
)

// arrowGlyph maps a direction the arrow points toward to its Unicode
// glyph set (straight + diagonal variants) and ASCII fallback.
func arrowGlyph(d graph.Direction, ascii bool) rune {
	if ascii {
		switch d {
		case graph.Up:
			return '^'
		case graph.Down:
			return 'v'
		case graph.Left:
			return '<'
		case graph.Right:
			return '>'
		default:
			return '*'
		}
	}
	switch d {
	case graph.Up:
		return '▲'
	case graph.Down:
		return '▼'
	case graph.Left:
		return '◄'
	case graph.Right:
		return '►'
	case graph.UpperLeft:
		return '◤'
	case graph.UpperRight:
		return '◥'
	case graph.LowerLeft:
		return '◣'
	case graph.LowerRight:
		return '◢'
	default:
		return '*'
	}
}

func strokeRune(style graph.EdgeStyle, horizontal, ascii bool) rune {
	if ascii {
		if horizontal {
			return '-'
		}
		return '|'
	}
	switch style {
	case graph.StyleThick:
		if horizontal {
			return '━'
		}
		return '┃'
	case graph.StyleDashed:
		if horizontal {
			return '╌'
		}
		return '╎'
	default:
		if horizontal {
			return '─'
		}
		return '│'
	}
}

func cornerRune(from, to graph.Direction, ascii bool) rune {
	if ascii {
		return '+'
	}
	// from/to are the directions of travel entering/leaving the bend.
	switch {
	case (from == graph.Right && to == graph.Down) || (from == graph.Up && to == graph.Left):
		return '┐'
	case (from == graph.Right && to == graph.Up) || (from == graph.Down && to == graph.Left):
		return '┘'
	case (from == graph.Left && to == graph.Down) || (from == graph.Up && to == graph.Right):
		return '┌'
	case (from == graph.Left && to == graph.Up) || (from == graph.Down && to == graph.Right):
		return '└'
	default:
		return '┼'
	}
}

func stepDir(a, b graph.DrawingCoord) graph.Direction {
	switch {
	case b.X > a.X:
		return graph.Right
	case b.X < a.X:
		return graph.Left
	case b.Y > a.Y:
		return graph.Down
	default:
		return graph.Up
	}
}

// DrawEdgePath paints an edge's routed path (already a merged, turn-only
// point list in drawing coordinates) onto base: straight strokes (step 3),
// corners (step 4), and arrowheads (step 5). startDir/endDir are the port
// directions used to orient the optional start/end arrowheads.
func DrawEdgePath(base *canvas.Canvas, path []graph.DrawingCoord, style graph.EdgeStyle, hasStart, hasEnd bool, startDir, endDir graph.Direction, ascii bool) {
	if len(path) < 2 {
		return
	}
	// Remember what each bend cell held before this edge's own strokes, so
	// the corner merges with earlier content rather than with the crossed
	// horizontal and vertical strokes painted at the bend below.
	orig := make([]rune, len(path))
	for i := 1; i+1 < len(path); i++ {
		orig[i] = base.Get(path[i].X, path[i].Y)
	}
	for i := 0; i+1 < len(path); i++ {
		drawSegment(base, path[i], path[i+1], style, ascii)
	}
	for i := 1; i+1 < len(path); i++ {
		from := stepDir(path[i-1], path[i])
		to := stepDir(path[i], path[i+1])
		if from != to {
			base.Set(path[i].X, path[i].Y, orig[i])
			base.SetMerged(path[i].X, path[i].Y, cornerRune(from, to, ascii), ascii)
		}
	}
	if hasStart {
		p := path[0]
		base.SetMerged(p.X, p.Y, arrowGlyph(startDir.Opposite(), ascii), ascii)
	}
	if hasEnd {
		p := path[len(path)-1]
		base.SetMerged(p.X, p.Y, arrowGlyph(endDir, ascii), ascii)
	}
}

func drawSegment(base *canvas.Canvas, a, b graph.DrawingCoord, style graph.EdgeStyle, ascii bool) {
	if a.Y == b.Y {
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		r := strokeRune(style, true, ascii)
		for x := lo; x <= hi; x++ {
			base.SetMerged(x, a.Y, r, ascii)
		}
		return
	}
	lo, hi := a.Y, b.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	r := strokeRune(style, false, ascii)
	for y := lo; y <= hi; y++ {
		base.SetMerged(a.X, y, r, ascii)
	}
}

// portMarker returns the box-start connector glyph for a port exiting a
// node border in direction d (Unicode only, step 6 of spec.md §4.5).
func portMarker(d graph.Direction) rune {
	switch d {
	case graph.Up:
		return '┴'
	case graph.Down:
		return '┬'
	case graph.Left:
		return '┤'
	case graph.Right:
		return '├'
	default:
		return '┼'
	}
}

// DrawPortMarker paints a box-start connector at a node border cell where
// an edge departs, Unicode mode only.
func DrawPortMarker(base *canvas.Canvas, p graph.DrawingCoord, dir graph.Direction, ascii bool) {
	if ascii {
		return
	}
	base.SetMerged(p.X, p.Y, portMarker(dir), false)
}
