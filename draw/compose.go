package draw

import (
	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/graph"
	"github.com/raiscui/beautiful-mermaid/label"
)

// EdgeDraw bundles everything the compositor needs to paint one routed
// edge: its drawing-coordinate path and port directions.
type EdgeDraw struct {
	Path             []graph.DrawingCoord
	Style            graph.EdgeStyle
	HasStart, HasEnd bool
	StartDir, EndDir graph.Direction
	Label            string
	LabelLineStart   graph.DrawingCoord
	LabelLineEnd     graph.DrawingCoord
}

// NodeDraw bundles a node's drawing coordinate, size, shape, and label.
type NodeDraw struct {
	Node *graph.Node
	At   graph.DrawingCoord
	W, H int
}

// SubgraphDraw bundles a subgraph's bounding box in drawing coordinates.
type SubgraphDraw struct {
	Subgraph *graph.Subgraph
	At       graph.DrawingCoord
	W, H     int
	Depth    int
}

// Composite paints everything onto one canvas in the eight-step fixed
// order of spec.md §4.5, finishing with crossing de-ambiguation.
func Composite(width, height int, ascii bool, subgraphs []SubgraphDraw, nodes []NodeDraw, edges []EdgeDraw) *canvas.Canvas {
	base := canvas.MkCanvas(width, height)

	// 1. Subgraph borders, shallowest depth first so inner subgraphs overdraw.
	sorted := append([]SubgraphDraw(nil), subgraphs...)
	sortByDepthAsc(sorted)
	for _, sg := range sorted {
		overlay := DrawSubgraphBorder(sg.W, sg.H, ascii, sg.Subgraph.Label)
		mergeAt(base, overlay, sg.At, ascii)
	}

	// 2. Node boxes.
	for _, nd := range nodes {
		overlay := DrawBox(nd.Node, nd.W, nd.H, ascii, nd.Node.Label)
		mergeAt(base, overlay, nd.At, ascii)
	}

	// 3-5. Edge paths, corners, arrowheads (drawn directly onto base via
	// SetMerged so the junction algebra applies per cell).
	for _, e := range edges {
		DrawEdgePath(base, e.Path, e.Style, e.HasStart, e.HasEnd, e.StartDir, e.EndDir, ascii)
	}

	// 6. Box-start port markers, Unicode only.
	for _, e := range edges {
		if len(e.Path) == 0 {
			continue
		}
		if e.HasStart {
			DrawPortMarker(base, e.Path[0], e.StartDir, ascii)
		}
	}

	// 7. Edge labels, computed after 1-6 so they can read the base canvas.
	forbidden := ForbiddenCells(base)
	maxX, _ := base.GetCanvasSize()
	for i := range edges {
		e := &edges[i]
		if e.Label == "" {
			continue
		}
		plain, _ := label.Strip(e.Label)
		placeLabel(base, plain, e.LabelLineStart, e.LabelLineEnd, forbidden, maxX)
	}

	// 8. Subgraph labels (top), painted last so they sit over borders.
	for _, sg := range sorted {
		if sg.Subgraph.Label == "" {
			continue
		}
		lw := canvas.StringWidth(sg.Subgraph.Label)
		x := sg.At.X + (sg.W-lw)/2
		if x < sg.At.X+1 {
			x = sg.At.X + 1
		}
		base.DrawText(x, sg.At.Y, sg.Subgraph.Label)
	}

	canvas.DeambiguateUnicodeCrossings(base)
	return base
}

func sortByDepthAsc(s []SubgraphDraw) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].Depth < s[j-1].Depth; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func mergeAt(base, overlay *canvas.Canvas, at graph.DrawingCoord, ascii bool) {
	ox, oy := overlay.GetCanvasSize()
	base.IncreaseSize(at.X+ox, at.Y+oy)
	for x := 0; x <= ox; x++ {
		for y := 0; y <= oy; y++ {
			r := overlay.Get(x, y)
			if r == ' ' {
				continue
			}
			base.SetMerged(at.X+x, at.Y+y, r, ascii)
		}
	}
}

// ForbiddenCells returns the set of canvas cells a label must not cover:
// arrowheads, junctions/corners, or "bridge crossings" where a horizontal
// and vertical stroke both pass through (spec.md §4.5).
func ForbiddenCells(c *canvas.Canvas) map[[2]int]bool {
	out := make(map[[2]int]bool)
	maxX, maxY := c.GetCanvasSize()
	for x := 0; x <= maxX; x++ {
		for y := 0; y <= maxY; y++ {
			r := c.Get(x, y)
			if isArrowGlyph(r) || canvas.IsJunctionChar(r) {
				out[[2]int{x, y}] = true
				continue
			}
			if isBridgeCrossing(c, x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func isArrowGlyph(r rune) bool {
	switch r {
	case '▲', '▼', '◄', '►', '◤', '◥', '◣', '◢', '^', 'v', '<', '>', '*':
		return true
	default:
		return false
	}
}

func isBridgeCrossing(c *canvas.Canvas, x, y int) bool {
	horiz := c.Get(x-1, y) != ' ' && c.Get(x+1, y) != ' '
	vert := c.Get(x, y-1) != ' ' && c.Get(x, y+1) != ' '
	return horiz && vert
}

// placeLabel searches nearest-first outward from the position centred on the
// chosen label-line segment, over every start x in [0, maxX-lw+1] on that
// segment's row, for one whose cells avoid every forbidden cell, painting the
// label once found. Per §8.3, forbidden cells (arrowheads, junctions,
// bridge-crossings) must stay character-identical; if no forbidden-free start
// exists anywhere on the row, the label is dropped rather than painted over
// them (§7, "recoverable, never abort").
func placeLabel(base *canvas.Canvas, text string, lineStart, lineEnd graph.DrawingCoord, forbidden map[[2]int]bool, maxX int) {
	lw := canvas.StringWidth(text)
	if lw == 0 {
		return
	}
	y := lineStart.Y
	segLo, segHi := lineStart.X, lineEnd.X
	if segLo > segHi {
		segLo, segHi = segHi, segLo
	}
	center := segLo + (segHi-segLo-lw)/2
	if center < 0 {
		center = 0
	}
	upper := maxX - lw + 1
	if upper < 0 {
		upper = 0
	}

	try := func(x int) bool {
		if x < 0 || x > upper {
			return false
		}
		for i := 0; i < lw; i++ {
			if forbidden[[2]int{x + i, y}] {
				return false
			}
		}
		return true
	}

	if try(center) {
		base.DrawText(center, y, text)
		return
	}
	for offset := 1; offset <= upper+lw; offset++ {
		if try(center - offset) {
			base.DrawText(center-offset, y, text)
			return
		}
		if try(center + offset) {
			base.DrawText(center+offset, y, text)
			return
		}
	}
	// No forbidden-free position exists anywhere on the row; drop the
	// label rather than overwrite a protected cell.
}
