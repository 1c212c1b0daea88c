// Package render orchestrates the full flowchart pipeline of spec.md §2:
// parse, grid layout (with the layout-margin retry loop of §4.4), edge
// routing, compositing, and the reverse direction back to Mermaid text.
package render

import (
	"regexp"

	"github.com/raiscui/beautiful-mermaid/astar"
	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/config"
	"github.com/raiscui/beautiful-mermaid/draw"
	"github.com/raiscui/beautiful-mermaid/graph"
	"github.com/raiscui/beautiful-mermaid/label"
	"github.com/raiscui/beautiful-mermaid/layout"
	"github.com/raiscui/beautiful-mermaid/mermaidsrc"
	"github.com/raiscui/beautiful-mermaid/reverse"
	"github.com/raiscui/beautiful-mermaid/router"
)

// Diagnostic records a recoverable failure: spec.md §7 requires the
// renderer to degrade rather than abort, so every such case is surfaced
// here instead of as a Go error.
type Diagnostic struct {
	EdgeSource string
	EdgeTarget string
	Message    string
}

// RenderResult is the full output of a Render call.
type RenderResult struct {
	Canvas      string
	Diagnostics []Diagnostic
}

var marginSchedule = []int{0, 1, 2, 3, 4}

// routeBuffer pads the router's grid beyond the last occupied layout cell
// so self-loop excursions and wide-bounds candidates have somewhere to go
// without hitting the context's hard edge.
const routeBuffer = 6

var directionHeader = regexp.MustCompile(`(?i)flowchart\s+(LR|RL|TD|TB|BT)`)

// Render runs the full pipeline over Mermaid flowchart source, returning
// the rendered canvas string plus any per-edge diagnostics. It only
// returns a non-nil error when src cannot be parsed as Mermaid text at
// all (spec.md §7 ADDED note: "fail closed" is reserved for that one
// case).
func Render(src string, cfg config.Config) (RenderResult, error) {
	g, err := mermaidsrc.Parse(src)
	if err != nil {
		return RenderResult{}, err
	}

	token := cfg.GraphDirection
	if m := directionHeader.FindStringSubmatch(src); m != nil {
		token = m[1]
	}
	base, flip := (config.Config{GraphDirection: token}).NormalizedDirection()
	if base == "LR" {
		g.Direction = graph.LR
	} else {
		g.Direction = graph.TD
	}

	for _, n := range g.Nodes {
		n.Label, _ = label.Strip(n.Label)
	}

	if len(g.NodeOrder) == 0 {
		return RenderResult{Canvas: ""}, nil
	}

	var (
		l     *layout.Layout
		rtr   *router.Router
		diags []Diagnostic
	)

	for _, margin := range marginSchedule {
		l = layout.NewLayout(g.Direction, cfg.PaddingX, cfg.PaddingY)
		l.PlaceNodes(g, margin)
		l.SizeColumnsAndRows(g)

		maxCol, maxRow := l.MaxCell()
		stride := maxCol + 3 + routeBuffer
		height := maxRow + 3 + routeBuffer
		rtr = router.NewRouter(stride, height, g.Direction, cfg.UseASCII)

		boxes := make(map[string]router.Box, len(g.NodeOrder))
		for _, id := range g.NodeOrder {
			cell := l.NodeCell[id]
			boxes[id] = router.Box{X0: cell.Col, Y0: cell.Row, X1: cell.Col + 2, Y1: cell.Row + 2}
		}
		for _, b := range boxes {
			for x := b.X0; x <= b.X1; x++ {
				for y := b.Y0; y <= b.Y1; y++ {
					rtr.AStar.Blocked[rtr.AStar.Idx(x, y)] = true
				}
			}
		}

		diags = diags[:0]
		ok := true
		for i, e := range g.Edges {
			e.Path = nil
			e.LabelLine = [2]graph.GridCoord{}
			fromBox, toBox := boxes[e.Source], boxes[e.Target]
			var cand router.Candidate
			var routed bool
			if e.Source == e.Target {
				portIdx := router.SelfLoopPort(rtr.AStar, fromBox, g.Direction)
				cand, routed = rtr.BuildSelfLoop(portIdx, i, i)
			} else {
				cand, routed = rtr.RouteEdgeBoxes(fromBox, toBox, i, i)
			}
			if !routed || len(cand.Path) < 2 {
				diags = append(diags, Diagnostic{EdgeSource: e.Source, EdgeTarget: e.Target, Message: "edge could not be routed"})
				ok = false
				continue
			}
			e.StartDir = cand.StartDir
			e.EndDir = cand.EndDir
			e.Path = gridPath(rtr.AStar, cand.Path)
		}
		if ok || margin == marginSchedule[len(marginSchedule)-1] {
			break
		}
	}

	for _, e := range g.Edges {
		l.InflateForPath(e.Path)
	}

	selectLabelLines(l, rtr, g)

	c := compositeCanvas(l, g, cfg.UseASCII)
	if flip {
		c = canvas.FlipCanvasVertically(c)
	}
	return RenderResult{Canvas: canvas.CanvasToString(c), Diagnostics: diags}, nil
}

// ReverseRender reconstructs Mermaid source from a previously rendered
// canvas string.
func ReverseRender(canvasText, direction string) (string, error) {
	return reverse.Parse(canvasText, direction)
}

func gridPath(ac *astar.Context, idxPath []int) []graph.GridCoord {
	out := make([]graph.GridCoord, len(idxPath))
	for i, idx := range idxPath {
		x, y := ac.XY(idx)
		out[i] = graph.GridCoord{X: x, Y: y}
	}
	return out
}

// selectLabelLines picks each edge's label-carrying segment after every
// edge has a final path, so later edges can avoid earlier labels' boxes.
func selectLabelLines(l *layout.Layout, rtr *router.Router, g *graph.Graph) {
	var existing []router.Box
	var nodeBoxes []router.Box
	for _, id := range g.NodeOrder {
		cell := l.NodeCell[id]
		nodeBoxes = append(nodeBoxes, router.Box{X0: cell.Col, Y0: cell.Row, X1: cell.Col + 2, Y1: cell.Row + 2})
	}
	for _, e := range g.Edges {
		if e.Label == "" || len(e.Path) < 2 {
			continue
		}
		plain, _ := label.Strip(e.Label)
		lw := canvas.StringWidth(plain)
		if lw == 0 {
			continue
		}
		idxPath := make([]int, len(e.Path))
		for i, p := range e.Path {
			idxPath[i] = rtr.AStar.Idx(p.X, p.Y)
		}
		line, box, ok := router.SelectLabelLine(rtr.AStar, idxPath, lw, 1, existing, nodeBoxes)
		if !ok {
			continue
		}
		sx, sy := rtr.AStar.XY(line[0])
		ex, ey := rtr.AStar.XY(line[1])
		e.LabelLine = [2]graph.GridCoord{{X: sx, Y: sy}, {X: ex, Y: ey}}
		existing = append(existing, box)
	}
}

func nodeDrawSize(l *layout.Layout, cell layout.Cell) (w, h int) {
	for i := 0; i < 3; i++ {
		w += l.ColumnWidth[cell.Col+i]
		h += l.RowHeight[cell.Row+i]
	}
	return w, h
}

func compositeCanvas(l *layout.Layout, g *graph.Graph, ascii bool) *canvas.Canvas {
	var nodes []draw.NodeDraw
	for _, id := range g.NodeOrder {
		n := g.Nodes[id]
		cell := l.NodeCell[id]
		w, h := nodeDrawSize(l, cell)
		nodes = append(nodes, draw.NodeDraw{Node: n, At: l.ProjectDrawingCoord(cell), W: w, H: h})
	}

	var subgraphs []draw.SubgraphDraw
	flattenSubgraphs(g.Subgraphs, func(sg *graph.Subgraph) {
		if len(sg.NodeIDs) == 0 {
			return
		}
		minCol, minRow, maxCol, maxRow := 1<<30, 1<<30, -1, -1
		for _, id := range sg.NodeIDs {
			cell, ok := l.NodeCell[id]
			if !ok {
				continue
			}
			if cell.Col < minCol {
				minCol = cell.Col
			}
			if cell.Row < minRow {
				minRow = cell.Row
			}
			if cell.Col+2 > maxCol {
				maxCol = cell.Col + 2
			}
			if cell.Row+2 > maxRow {
				maxRow = cell.Row + 2
			}
		}
		if maxCol < 0 {
			return
		}
		x0, y0 := minCol-1, minRow-1
		if x0 < 0 {
			x0 = 0
		}
		if y0 < 0 {
			y0 = 0
		}
		x1, y1 := maxCol+1, maxRow+1
		at := l.ProjectDrawingCoord(layout.Cell{Col: x0, Row: y0})
		w, h := 0, 0
		for c := x0; c <= x1; c++ {
			w += l.ColumnWidth[c]
		}
		for r := y0; r <= y1; r++ {
			h += l.RowHeight[r]
		}
		subgraphs = append(subgraphs, draw.SubgraphDraw{Subgraph: sg, At: at, W: w, H: h, Depth: sg.Depth})
	})

	var edges []draw.EdgeDraw
	for _, e := range g.Edges {
		if len(e.Path) < 2 {
			continue
		}
		path := make([]graph.DrawingCoord, len(e.Path))
		for i, p := range e.Path {
			path[i] = l.ProjectDrawingCoord(layout.Cell{Col: p.X, Row: p.Y})
		}
		ls := l.ProjectDrawingCoord(layout.Cell{Col: e.LabelLine[0].X, Row: e.LabelLine[0].Y})
		le := l.ProjectDrawingCoord(layout.Cell{Col: e.LabelLine[1].X, Row: e.LabelLine[1].Y})
		edges = append(edges, draw.EdgeDraw{
			Path: path, Style: e.Style, HasStart: e.HasArrowStart, HasEnd: e.HasArrowEnd,
			StartDir: e.StartDir, EndDir: e.EndDir, Label: e.Label,
			LabelLineStart: ls, LabelLineEnd: le,
		})
	}

	width, height := totalSize(l)
	return draw.Composite(width-1, height-1, ascii, subgraphs, nodes, edges)
}

// totalSize sums every column width and row height the layout knows
// about, including columns/rows a routed edge's path inflated beyond the
// last node's own reservation block.
func totalSize(l *layout.Layout) (width, height int) {
	maxCol, maxRow := l.MaxCell()
	maxCol += 2
	maxRow += 2
	for c := range l.ColumnWidth {
		if c > maxCol {
			maxCol = c
		}
	}
	for r := range l.RowHeight {
		if r > maxRow {
			maxRow = r
		}
	}
	for c := 0; c <= maxCol; c++ {
		width += l.ColumnWidth[c]
	}
	for r := 0; r <= maxRow; r++ {
		height += l.RowHeight[r]
	}
	return width, height
}

func flattenSubgraphs(roots []*graph.Subgraph, visit func(*graph.Subgraph)) {
	for _, sg := range roots {
		visit(sg)
		flattenSubgraphs(sg.Children, visit)
	}
}
