package reverse

import (
	"fmt"
	"sort"
	"strings"
)

// ParsedEdge is one emitted edge relation.
type ParsedEdge struct {
	SourceBox, TargetBox int
	Label                string
}

// Parse reconstructs a grid from rendered canvas text, detects boxes,
// traces every arrow back to its source port(s), and returns the boxes
// (in stable label-sorted id order) plus the resolved edges.
func Parse(canvasText string, direction string) (string, error) {
	g := BuildGrid(canvasText)
	boxes := DetectBoxes(g)
	bi := borderIndex(boxes)
	hits := TraceArrows(g, boxes, bi)

	order := sortedBoxOrder(boxes)
	idOf := make(map[int]string, len(boxes))
	for rank, origIdx := range order {
		idOf[origIdx] = fmt.Sprintf("N%d", rank+1)
	}

	var edges []ParsedEdge
	for _, hit := range hits {
		if hit.TargetBox < 0 {
			continue
		}
		resolved := Disambiguate(hit.Sources)
		for _, src := range resolved {
			label := arrowLabel(g, boxes, src.box, hit.TargetBox)
			edges = append(edges, ParsedEdge{SourceBox: src.box, TargetBox: hit.TargetBox, Label: label})
		}
	}

	return emit(direction, boxes, order, idOf, edges), nil
}

func sortedBoxOrder(boxes []Box) []int {
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return boxes[order[i]].Label < boxes[order[j]].Label
	})
	return order
}

// arrowLabel extracts the edge label by walking visited cells between two
// boxes and returning the first horizontal run of label characters
// (matching the renderer's first-wide-segment bias), falling back to the
// longest run.
func arrowLabel(g *Grid, boxes []Box, fromBox, toBox int) string {
	if fromBox < 0 || fromBox >= len(boxes) || toBox < 0 || toBox >= len(boxes) {
		return ""
	}
	a, b := boxes[fromBox], boxes[toBox]
	y0, y1 := minInt(a.Y0, b.Y0), maxInt(a.Y1, b.Y1)
	var firstRun, longestRun string
	for y := y0; y <= y1; y++ {
		run := horizontalLabelRun(g, y)
		if run == "" {
			continue
		}
		if firstRun == "" {
			firstRun = run
		}
		if len(run) > len(longestRun) {
			longestRun = run
		}
	}
	if firstRun != "" {
		return firstRun
	}
	return longestRun
}

func horizontalLabelRun(g *Grid, y int) string {
	var best []rune
	var cur []rune
	flush := func() {
		if len(cur) > len(best) {
			best = append([]rune(nil), cur...)
		}
		cur = cur[:0]
	}
	for x := 0; x < g.Width; x++ {
		if g.IsPlaceholder(x, y) {
			continue
		}
		r := g.At(x, y)
		if isLabelChar(r) {
			cur = append(cur, r)
		} else {
			flush()
		}
	}
	flush()
	return string(best)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func emit(direction string, boxes []Box, order []int, idOf map[int]string, edges []ParsedEdge) string {
	var b strings.Builder
	if direction == "" {
		direction = "LR"
	}
	fmt.Fprintf(&b, "flowchart %s\n", direction)
	for _, origIdx := range order {
		box := boxes[origIdx]
		fmt.Fprintf(&b, "    %s[%q]\n", idOf[origIdx], box.Label)
	}
	for _, e := range edges {
		src, ok1 := idOf[e.SourceBox]
		dst, ok2 := idOf[e.TargetBox]
		if !ok1 || !ok2 {
			continue
		}
		if e.Label != "" {
			fmt.Fprintf(&b, "    %s -->|%s| %s\n", src, e.Label, dst)
		} else {
			fmt.Fprintf(&b, "    %s --> %s\n", src, dst)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
