// Package layout implements the grid-based node layout of spec.md §4.4:
// level-based root placement, 3x3 per-node reservation with recursive
// perpendicular shift on collision, column/row sizing, grid-size inflation
// along routed edge paths, and the layout-margin retry loop.
package layout

import "github.com/raiscui/beautiful-mermaid/graph"

// Cell is one 3x3-block-granular grid position.
type Cell struct{ Col, Row int }

// Layout holds the per-node grid placement and the derived column/row
// sizing tables, before drawing coordinates are projected.
type Layout struct {
	Dir graph.GridDirection

	NodeCell   map[string]Cell
	occupied   map[Cell]string
	maxCol     int
	maxRow     int

	ColumnWidth map[int]int
	RowHeight   map[int]int

	PaddingX, PaddingY int
}

// NewLayout builds an empty layout for the given graph direction and
// padding configuration.
func NewLayout(dir graph.GridDirection, paddingX, paddingY int) *Layout {
	return &Layout{
		Dir:         dir,
		NodeCell:    make(map[string]Cell),
		occupied:    make(map[Cell]string),
		ColumnWidth: make(map[int]int),
		RowHeight:   make(map[int]int),
		PaddingX:    paddingX,
		PaddingY:    paddingY,
	}
}

// PlaceNodes performs level-based root placement followed by BFS-order
// placement of each root's descendants, shifting level by 4 per generation
// the way each node's own 3x3 reservation block does.
func (l *Layout) PlaceNodes(g *graph.Graph, margin int) {
	level := make(map[string]int)
	visited := make(map[string]bool)

	roots := g.Roots()
	externalCol, subgraphCol := 0, 0
	if l.Dir == graph.LR {
		subgraphCol = 4
	}
	rowCursor, rowCursorSub := 0, 0

	for _, id := range roots {
		n := g.Nodes[id]
		var cell Cell
		if l.Dir == graph.LR {
			col := externalCol
			row := rowCursor
			if n.SubgraphID != "" {
				col = subgraphCol
				row = rowCursorSub
			}
			cell = Cell{Col: col, Row: row}
		} else {
			row := externalCol
			col := rowCursor
			if n.SubgraphID != "" {
				row = subgraphCol
				col = rowCursorSub
			}
			cell = Cell{Col: col, Row: row}
		}
		l.reserve(n.ID, cell, margin)
		level[id] = 0
		visited[id] = true
		if n.SubgraphID != "" {
			rowCursorSub += 4
		} else {
			rowCursor += 4
		}
	}

	queue := append([]string(nil), roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		lvl := level[id]
		for _, e := range g.Edges {
			if e.Source != id || visited[e.Target] {
				continue
			}
			childLevel := lvl + 4
			// base already carries the margin, which reserve adds back.
			base := l.NodeCell[id]
			var cell Cell
			if l.Dir == graph.LR {
				cell = Cell{Col: childLevel, Row: base.Row - margin}
			} else {
				cell = Cell{Col: base.Col - margin, Row: childLevel}
			}
			l.reserve(e.Target, cell, margin)
			level[e.Target] = childLevel
			visited[e.Target] = true
			queue = append(queue, e.Target)
		}
	}

	// Any node unreachable from a root (shouldn't normally happen once
	// Roots() is exhaustive, but defensive against disconnected fragments).
	for _, id := range g.NodeOrder {
		if !visited[id] {
			l.reserve(id, Cell{Col: 0, Row: rowCursor}, margin)
			rowCursor += 4
			visited[id] = true
		}
	}

	for id, cell := range l.NodeCell {
		g.Nodes[id].Grid = graph.GridCoord{X: cell.Col, Y: cell.Row}
	}
}

// reserve places a node at cell, recursively shifting perpendicular to the
// growth axis on collision (+4 rows under LR, +4 columns under TD).
func (l *Layout) reserve(nodeID string, cell Cell, margin int) {
	cell = Cell{Col: cell.Col + margin, Row: cell.Row + margin}
	for {
		if owner, ok := l.occupied[cell]; !ok || owner == nodeID {
			break
		}
		if l.Dir == graph.LR {
			cell.Row += 4
		} else {
			cell.Col += 4
		}
	}
	l.occupied[cell] = nodeID
	l.NodeCell[nodeID] = cell
	if cell.Col > l.maxCol {
		l.maxCol = cell.Col
	}
	if cell.Row > l.maxRow {
		l.maxRow = cell.Row
	}
}

// SizeColumnsAndRows computes the column-width/row-height tables for every
// node's 3x3 reservation block, per spec.md §4.4's sizing formula, adding
// the subgraph top-node vertical-padding overhead where it applies.
func (l *Layout) SizeColumnsAndRows(g *graph.Graph) {
	topmostInSubgraph := findTopmostIncomingFromOutside(g)

	for _, id := range g.NodeOrder {
		n := g.Nodes[id]
		cell := l.NodeCell[id]
		labelWidth := displayWidth(n.Label)

		colWidths := [3]int{1, 2*l.PaddingX + labelWidth, 1}
		vPad := l.PaddingY
		if topmostInSubgraph[id] {
			vPad += 4
		}
		rowHeights := [3]int{1, 1 + 2*vPad, 1}

		for i := 0; i < 3; i++ {
			col := cell.Col + i
			if colWidths[i] > l.ColumnWidth[col] {
				l.ColumnWidth[col] = colWidths[i]
			}
			row := cell.Row + i
			if rowHeights[i] > l.RowHeight[row] {
				l.RowHeight[row] = rowHeights[i]
			}
		}
	}
}

// findTopmostIncomingFromOutside identifies, per subgraph, the single node
// that both has an incoming edge from outside its subgraph and sits at the
// minimum row/column among such nodes in that subgraph.
func findTopmostIncomingFromOutside(g *graph.Graph) map[string]bool {
	type candidate struct {
		id  string
		rnk int
	}
	bySubgraph := make(map[string][]candidate)
	for _, e := range g.Edges {
		src, ok := g.Nodes[e.Source]
		if !ok {
			continue
		}
		tgt, ok := g.Nodes[e.Target]
		if !ok || tgt.SubgraphID == "" {
			continue
		}
		if src.SubgraphID == tgt.SubgraphID {
			continue
		}
		rnk := tgt.Grid.Y
		if g.Direction == graph.TD {
			rnk = tgt.Grid.X
		}
		bySubgraph[tgt.SubgraphID] = append(bySubgraph[tgt.SubgraphID], candidate{id: tgt.ID, rnk: rnk})
	}
	out := make(map[string]bool)
	for _, cands := range bySubgraph {
		best := cands[0]
		for _, c := range cands[1:] {
			if c.rnk < best.rnk {
				best = c
			}
		}
		out[best.id] = true
	}
	return out
}

// displayWidth avoids importing package canvas's exact width table (layout
// only needs the same rule, not the canvas type); kept in sync manually
// since both tables are derived from the same spec.md §4.1 ranges.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch {
		case isZeroWidth(r):
		case isWide(r):
			w += 2
		default:
			w++
		}
	}
	return w
}

func isZeroWidth(r rune) bool {
	switch {
	case r < 0x20, r == 0x7f:
		return true
	case r >= 0x0300 && r <= 0x036F:
		return true
	case r >= 0x1AB0 && r <= 0x1AFF:
		return true
	case r >= 0x1DC0 && r <= 0x1DFF:
		return true
	case r >= 0x20D0 && r <= 0x20FF:
		return true
	case r >= 0xFE20 && r <= 0xFE2F:
		return true
	default:
		return false
	}
}

func isWide(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F:
		return true
	case r >= 0x2E80 && r <= 0xA4CF:
		return true
	case r >= 0xAC00 && r <= 0xD7A3:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	case r >= 0xFF00 && r <= 0xFF60:
		return true
	case r >= 0xFFE0 && r <= 0xFFE6:
		return true
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x1F900 && r <= 0x1F9FF:
		return true
	default:
		return false
	}
}

// InflateForPath ensures every column/row a routed edge's path passes
// through has at least a minimal width/height entry, defaulting to half the
// configured padding (spec.md §4.4's "grid-size inflation").
func (l *Layout) InflateForPath(path []graph.GridCoord) {
	for i, p := range path {
		q := p
		if i+1 < len(path) {
			q = path[i+1]
		}
		for x := min(p.X, q.X); x <= max(p.X, q.X); x++ {
			if _, ok := l.ColumnWidth[x]; !ok {
				l.ColumnWidth[x] = max(1, l.PaddingX/2)
			}
		}
		for y := min(p.Y, q.Y); y <= max(p.Y, q.Y); y++ {
			if _, ok := l.RowHeight[y]; !ok {
				l.RowHeight[y] = max(1, l.PaddingY/2)
			}
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MaxCell returns the highest occupied column and row.
func (l *Layout) MaxCell() (col, row int) { return l.maxCol, l.maxRow }

// ProjectDrawingCoord converts a node's grid cell (its top-left corner of
// the 3x3 block) to an absolute drawing coordinate by summing every
// preceding column's width / row's height.
func (l *Layout) ProjectDrawingCoord(cell Cell) graph.DrawingCoord {
	x := 0
	for c := 0; c < cell.Col; c++ {
		x += l.ColumnWidth[c]
	}
	y := 0
	for r := 0; r < cell.Row; r++ {
		y += l.RowHeight[r]
	}
	return graph.DrawingCoord{X: x, Y: y}
}
