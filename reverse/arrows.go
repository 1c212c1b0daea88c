package reverse

// ArrowHit is a detected arrowhead glyph together with the box it points
// into (identified by intersecting the adjacent border cell with the
// box-border index) and the candidate source ports reached by BFS.
type ArrowHit struct {
	X, Y      int
	TargetBox int // index into the box slice, or -1 if none found
	Sources   []sourceCandidate
}

type sourceCandidate struct {
	box     int
	pathLen int
	label   string
	isSelf  bool
}

// borderIndex maps every border cell to the box index it belongs to, for
// O(1) "which box does this border cell belong to" lookups during tracing.
func borderIndex(boxes []Box) map[[2]int]int {
	idx := make(map[[2]int]int)
	for i, b := range boxes {
		for x := b.X0; x <= b.X1; x++ {
			idx[[2]int{x, b.Y0}] = i
			idx[[2]int{x, b.Y1}] = i
		}
		for y := b.Y0; y <= b.Y1; y++ {
			idx[[2]int{b.X0, y}] = i
			idx[[2]int{b.X1, y}] = i
		}
	}
	return idx
}

// TraceArrows finds every arrow glyph in the grid, resolves its target box
// via border-index intersection, then BFS-traces backward through
// non-whitespace, non-box-interior cells to collect every reachable source
// port whose border glyph is a source-marker junction.
func TraceArrows(g *Grid, boxes []Box, bi map[[2]int]int) []ArrowHit {
	interior := interiorSet(boxes)
	var hits []ArrowHit
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			if !isArrow(g.At(x, y)) {
				continue
			}
			hit := ArrowHit{X: x, Y: y, TargetBox: -1}
			if box, ok := resolveTarget(g, bi, x, y); ok {
				hit.TargetBox = box
			}
			hit.Sources = bfsSources(g, boxes, bi, interior, x, y, hit.TargetBox)
			hits = append(hits, hit)
		}
	}
	return hits
}

func resolveTarget(g *Grid, bi map[[2]int]int, x, y int) (int, bool) {
	neighbors := [][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
	for _, n := range neighbors {
		if box, ok := bi[n]; ok {
			return box, true
		}
	}
	return 0, false
}

func interiorSet(boxes []Box) map[[2]int]int {
	m := make(map[[2]int]int)
	for i, b := range boxes {
		for x := b.X0 + 1; x < b.X1; x++ {
			for y := b.Y0 + 1; y < b.Y1; y++ {
				m[[2]int{x, y}] = i
			}
		}
	}
	return m
}

func bfsSources(g *Grid, boxes []Box, bi map[[2]int]int, interior map[[2]int]int, ax, ay, targetBox int) []sourceCandidate {
	type state struct{ x, y, dist int }
	visited := map[[2]int]bool{{ax, ay}: true}
	queue := []state{{ax, ay, 0}}
	var out []sourceCandidate

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := s.x+d[0], s.y+d[1]
			key := [2]int{nx, ny}
			if visited[key] {
				continue
			}
			if _, inInterior := interior[key]; inInterior {
				continue // never walk through a box's own interior
			}
			r := g.At(nx, ny)
			if r == ' ' {
				continue
			}
			if box, onBorder := bi[key]; onBorder {
				if isSourceMarker(r) {
					label := ""
					if box >= 0 && box < len(boxes) {
						label = boxes[box].Label
					}
					out = append(out, sourceCandidate{
						box:     box,
						pathLen: s.dist + 1,
						label:   label,
						isSelf:  box == targetBox,
					})
				}
				continue // border cells terminate the walk either way
			}
			visited[key] = true
			queue = append(queue, state{nx, ny, s.dist + 1})
		}
	}
	return out
}

// Disambiguate applies spec.md §4.6's policy when an arrowhead reaches
// multiple source candidates: suppress pseudo-self-loops, accept shared
// fan-in when every remaining candidate agrees on label text, otherwise
// take the shortest path (breaking ties against self-loops).
func Disambiguate(cands []sourceCandidate) []sourceCandidate {
	if len(cands) <= 1 {
		return cands
	}
	minOther := -1
	for _, c := range cands {
		if !c.isSelf && (minOther == -1 || c.pathLen < minOther) {
			minOther = c.pathLen
		}
	}
	if minOther != -1 {
		var filtered []sourceCandidate
		for _, c := range cands {
			if c.isSelf && c.pathLen > minOther-2 {
				continue
			}
			filtered = append(filtered, c)
		}
		cands = filtered
	}
	if len(cands) <= 1 {
		return cands
	}

	sameLabel := true
	for _, c := range cands[1:] {
		if c.label != cands[0].label {
			sameLabel = false
			break
		}
	}
	if sameLabel {
		return cands
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.pathLen < best.pathLen || (c.pathLen == best.pathLen && best.isSelf && !c.isSelf) {
			best = c
		}
	}
	return []sourceCandidate{best}
}
