package router

import "github.com/raiscui/beautiful-mermaid/astar"

// Box is an axis-aligned grid-cell rectangle (inclusive bounds), used for
// collision checks against already-placed label boxes and node boxes.
type Box struct {
	X0, Y0, X1, Y1 int
}

func (b Box) overlaps(o Box) bool {
	return b.X0 <= o.X1 && o.X0 <= b.X1 && b.Y0 <= o.Y1 && o.Y0 <= b.Y1
}

// segment is one straight run within a merged path, identified by its
// start/end index into the path and its column-width span.
type segment struct {
	start, end int
	width      int
}

func segmentsOf(ac *astar.Context, path []int) []segment {
	var out []segment
	for i := 0; i+1 < len(path); i++ {
		ax, ay := ac.XY(path[i])
		bx, by := ac.XY(path[i+1])
		w := abs(bx-ax) + abs(by-ay)
		out = append(out, segment{start: i, end: i + 1, width: w})
	}
	return out
}

// boxForSegment returns the candidate label box centred on a path segment,
// at the given label display width/height.
func boxForSegment(ac *astar.Context, path []int, seg segment, labelWidth, labelHeight int) Box {
	ax, ay := ac.XY(path[seg.start])
	bx, by := ac.XY(path[seg.end])
	midX, midY := (ax+bx)/2, (ay+by)/2
	halfW, halfH := labelWidth/2, labelHeight/2
	return Box{X0: midX - halfW, Y0: midY - halfH, X1: midX - halfW + labelWidth - 1, Y1: midY - halfH + labelHeight - 1}
}

// SelectLabelLine picks the path segment to carry an edge's label, per
// spec.md §4.3: prefer the first segment wide enough for the label whose
// box overlaps neither an existing label box nor a node box; otherwise the
// widest non-overlapping candidate; otherwise the original widest segment.
// Returns the chosen segment's two path-array indices and its label box.
func SelectLabelLine(ac *astar.Context, path []int, labelWidth, labelHeight int, existing, nodeBoxes []Box) ([2]int, Box, bool) {
	segs := segmentsOf(ac, path)
	if len(segs) == 0 {
		return [2]int{}, Box{}, false
	}

	fits := func(seg segment) (Box, bool) {
		box := boxForSegment(ac, path, seg, labelWidth, labelHeight)
		for _, e := range existing {
			if box.overlaps(e) {
				return box, false
			}
		}
		for _, n := range nodeBoxes {
			if box.overlaps(n) {
				return box, false
			}
		}
		return box, true
	}

	for _, seg := range segs {
		if seg.width < labelWidth {
			continue
		}
		if box, ok := fits(seg); ok {
			return [2]int{path[seg.start], path[seg.end]}, box, true
		}
	}

	widestIdx := -1
	widest := -1
	for i, seg := range segs {
		if box, ok := fits(seg); ok && seg.width > widest {
			widest = seg.width
			widestIdx = i
			_ = box
		}
	}
	if widestIdx >= 0 {
		seg := segs[widestIdx]
		box, _ := fits(seg)
		return [2]int{path[seg.start], path[seg.end]}, box, true
	}

	best := segs[0]
	for _, seg := range segs[1:] {
		if seg.width > best.width {
			best = seg
		}
	}
	box := boxForSegment(ac, path, best, labelWidth, labelHeight)
	return [2]int{path[best.start], path[best.end]}, box, true
}
