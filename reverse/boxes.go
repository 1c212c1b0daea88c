package reverse

// Box is a detected node rectangle in grid coordinates (inclusive).
type Box struct {
	X0, Y0, X1, Y1 int
	Label          string
}

func (b Box) contains(o Box) bool {
	return b.X0 <= o.X0 && b.Y0 <= o.Y0 && b.X1 >= o.X1 && b.Y1 >= o.Y1 && b != o
}

// DetectBoxes runs the three complementary detection strategies and unions
// their results, dropping any box strictly contained in another (discarding
// subgraph outer rectangles) and any box whose interior carries no label
// characters at all.
func DetectBoxes(g *Grid) []Box {
	var found []Box
	found = append(found, topLeftAnchored(g)...)
	found = append(found, bottomUp(g)...)
	found = append(found, fixedHeight(g)...)

	found = dedupe(found)

	var kept []Box
	for i, b := range found {
		contained := false
		for j, o := range found {
			if i != j && o.contains(b) {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		if !hasLabelChar(g, b) {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

func hasLabelChar(g *Grid, b Box) bool {
	for y := b.Y0 + 1; y < b.Y1; y++ {
		for x := b.X0 + 1; x < b.X1; x++ {
			if isLabelChar(g.At(x, y)) {
				return true
			}
		}
	}
	return false
}

func dedupe(boxes []Box) []Box {
	seen := make(map[Box]bool)
	var out []Box
	for _, b := range boxes {
		key := Box{b.X0, b.Y0, b.X1, b.Y1, ""}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// topLeftAnchored finds '┌', its matching '┐' on the same row, then a
// matching bottom-left/right corner on a lower row, requiring valid border
// characters throughout.
func topLeftAnchored(g *Grid) []Box {
	var out []Box
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != '┌' {
				continue
			}
			x2 := x + 1
			for x2 < g.Width && g.At(x2, y) != '┐' && isTopBorder(g.At(x2, y)) {
				x2++
			}
			if x2 >= g.Width || g.At(x2, y) != '┐' {
				continue
			}
			for y2 := y + 1; y2 < g.Height(); y2++ {
				if g.At(x, y2) == '└' && g.At(x2, y2) == '┘' && sidesValid(g, x, x2, y+1, y2-1) {
					out = append(out, Box{X0: x, Y0: y, X1: x2, Y1: y2, Label: extractInteriorLabel(g, x, y, x2, y2)})
					break
				}
				if !isSideBorder(g.At(x, y2)) && !labelRowOK(g, x, x2, y2) {
					break
				}
			}
		}
	}
	return out
}

func sidesValid(g *Grid, x0, x1, y0, y1 int) bool {
	for y := y0; y <= y1; y++ {
		if !isSideBorder(g.At(x0, y)) && !labelRowOK(g, x0, x1, y) {
			return false
		}
		if !isSideBorder(g.At(x1, y)) && !labelRowOK(g, x0, x1, y) {
			return false
		}
	}
	return true
}

func labelRowOK(g *Grid, x0, x1, y int) bool {
	return isSideBorder(g.At(x0, y)) && isSideBorder(g.At(x1, y))
}

// bottomUp finds bottom corners and walks upward through side-border
// characters until the top border is lost, handling boxes whose top
// border was overwritten by a crossing edge label.
func bottomUp(g *Grid) []Box {
	var out []Box
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != '└' {
				continue
			}
			x2 := x + 1
			for x2 < g.Width && isTopBorder(g.At(x2, y)) {
				x2++
			}
			if x2 >= g.Width || g.At(x2, y) != '┘' {
				continue
			}
			top := y
			for y2 := y - 1; y2 >= 0; y2-- {
				if isSideBorder(g.At(x, y2)) && isSideBorder(g.At(x2, y2)) {
					top = y2
					continue
				}
				break
			}
			if top < y {
				out = append(out, Box{X0: x, Y0: top, X1: x2, Y1: y, Label: extractInteriorLabel(g, x, top, x2, y)})
			}
		}
	}
	return out
}

// fixedHeight assumes a default 5-row box (border, pad, label, pad, border)
// centred on any row carrying side-border characters at (x1, x2).
func fixedHeight(g *Grid) []Box {
	var out []Box
	for y := 0; y < g.Height(); y++ {
		for x1 := 0; x1 < g.Width; x1++ {
			if !isSideBorder(g.At(x1, y)) {
				continue
			}
			for x2 := x1 + 1; x2 < g.Width; x2++ {
				if !isSideBorder(g.At(x2, y)) {
					continue
				}
				top, bot := y-2, y+2
				if top < 0 || bot >= g.Height() {
					continue
				}
				if !isSideBorder(g.At(x1, y-1)) || !isSideBorder(g.At(x2, y-1)) {
					continue
				}
				if !isSideBorder(g.At(x1, y+1)) || !isSideBorder(g.At(x2, y+1)) {
					continue
				}
				if !isTopBorder(g.At(x1, top)) || !isTopBorder(g.At(x2, bot)) {
					continue
				}
				out = append(out, Box{X0: x1, Y0: top, X1: x2, Y1: bot, Label: extractInteriorLabel(g, x1, top, x2, bot)})
			}
		}
	}
	return out
}

func extractInteriorLabel(g *Grid, x0, y0, x1, y1 int) string {
	var best []rune
	for y := y0 + 1; y < y1; y++ {
		var run []rune
		for x := x0 + 1; x < x1; x++ {
			r := g.At(x, y)
			if isLabelChar(r) {
				run = append(run, r)
			}
		}
		if len(run) > len(best) {
			best = run
		}
	}
	return string(best)
}
