// Package stitch implements connected-component partitioning and canvas
// stitching for components routed by an external positioned-graph layout
// instead of the module's own grid router (spec.md §2, §8.7, §8.8).
package stitch

import (
	"sort"

	"github.com/raiscui/beautiful-mermaid/canvas"
	"github.com/raiscui/beautiful-mermaid/graph"
)

type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// Component is one connected partition of the graph: its node ids (in
// deterministic order) and the indices of edges fully contained within it.
type Component struct {
	NodeIDs    []string
	EdgeIdxs   []int
}

// FindConnectedComponents partitions g's nodes by edge adjacency via
// union-find, assigning each edge to a component iff both endpoints share
// one. Output order is deterministic: components are sorted by their
// lexicographically smallest node id, and node ids within a component keep
// the graph's own node order.
func FindConnectedComponents(g *graph.Graph) []Component {
	uf := newUnionFind(g.NodeOrder)
	for _, e := range g.Edges {
		if _, ok := g.Nodes[e.Source]; !ok {
			continue
		}
		if _, ok := g.Nodes[e.Target]; !ok {
			continue
		}
		uf.union(e.Source, e.Target)
	}

	byRoot := make(map[string][]string)
	for _, id := range g.NodeOrder {
		root := uf.find(id)
		byRoot[root] = append(byRoot[root], id)
	}

	var roots []string
	for root := range byRoot {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return minID(byRoot[roots[i]]) < minID(byRoot[roots[j]])
	})

	componentOf := make(map[string]int, len(g.NodeOrder))
	comps := make([]Component, len(roots))
	for i, root := range roots {
		comps[i].NodeIDs = byRoot[root]
		for _, id := range byRoot[root] {
			componentOf[id] = i
		}
	}
	for idx, e := range g.Edges {
		ci, ok := componentOf[e.Source]
		cj, ok2 := componentOf[e.Target]
		if ok && ok2 && ci == cj {
			comps[ci].EdgeIdxs = append(comps[ci].EdgeIdxs, idx)
		}
	}
	return comps
}

func minID(ids []string) string {
	best := ids[0]
	for _, id := range ids[1:] {
		if id < best {
			best = id
		}
	}
	return best
}

// ComponentLayout is one already-rendered component's canvas, ready to be
// stacked by StitchComponentLayouts.
type ComponentLayout struct {
	Canvas *canvas.Canvas
	Width  int
	Height int
}

// StitchComponentLayouts perpendicularly stacks each component's canvas
// with a fixed gap between them, per spec.md §8.8: under TD the stack runs
// horizontally (width sums, height takes the max); under LR it runs
// vertically (height sums, width takes the max).
func StitchComponentLayouts(layouts []ComponentLayout, dir graph.GridDirection, gap int) *canvas.Canvas {
	if len(layouts) == 0 {
		return canvas.MkCanvas(-1, -1)
	}
	if dir == graph.TD {
		width := -gap
		height := 0
		for _, l := range layouts {
			width += l.Width + gap
			if l.Height > height {
				height = l.Height
			}
		}
		out := canvas.MkCanvas(width-1, height-1)
		x := 0
		for _, l := range layouts {
			overlay := struct {
				C      *canvas.Canvas
				DX, DY int
			}{l.Canvas, x, 0}
			out = canvas.MergeCanvases(out, false, overlay)
			x += l.Width + gap
		}
		return out
	}

	width := 0
	height := -gap
	for _, l := range layouts {
		height += l.Height + gap
		if l.Width > width {
			width = l.Width
		}
	}
	out := canvas.MkCanvas(width-1, height-1)
	y := 0
	for _, l := range layouts {
		overlay := struct {
			C      *canvas.Canvas
			DX, DY int
		}{l.Canvas, 0, y}
		out = canvas.MergeCanvases(out, false, overlay)
		y += l.Height + gap
	}
	return out
}
