package canvas

// Connectivity bit layout used by the junction algebra: each box-drawing
// character is described by which of its four sides has a stroke reaching
// the cell's centre.
const (
	bitLeft  = 1
	bitRight = 2
	bitUp    = 4
	bitDown  = 8
)

var maskToGlyph = map[int]rune{
	bitLeft:                                 '╴',
	bitRight:                                '╶',
	bitLeft | bitRight:                      '─',
	bitUp:                                   '╵',
	bitDown:                                 '╷',
	bitUp | bitDown:                         '│',
	bitLeft | bitUp:                      '┘',
	bitLeft | bitDown:                    '┐',
	bitRight | bitUp:                     '└',
	bitRight | bitDown:                   '┌',
	bitLeft | bitRight | bitUp:           '┴',
	bitLeft | bitRight | bitDown:         '┬',
	bitLeft | bitUp | bitDown:            '┤',
	bitRight | bitUp | bitDown:           '├',
	bitLeft | bitRight | bitUp | bitDown: '┼',
}

var glyphToMask map[rune]int

func init() {
	glyphToMask = make(map[rune]int, len(maskToGlyph))
	for mask, r := range maskToGlyph {
		glyphToMask[r] = mask
	}
}

// IsJunctionChar reports whether r is one of the sixteen box-drawing
// connectivity glyphs (including the degenerate single-stub ones).
func IsJunctionChar(r rune) bool {
	_, ok := glyphToMask[r]
	return ok
}

// JunctionMask returns the 4-bit connectivity mask for a junction glyph.
func JunctionMask(r rune) (mask int, ok bool) {
	mask, ok = glyphToMask[r]
	return
}

// GlyphForMask returns the junction glyph for a connectivity mask, or a
// space if the mask is empty (no stroke reaches the cell at all).
func GlyphForMask(mask int) rune {
	if mask == 0 {
		return ' '
	}
	if r, ok := maskToGlyph[mask]; ok {
		return r
	}
	return '┼'
}

// mergeJunction combines two junction glyphs by OR-ing their connectivity
// masks — spec.md §4.1's "fixed ~10x10-ish table keyed by the sixteen
// connectivity bits of the combined glyph".
func mergeJunction(base, overlay rune) rune {
	bm, _ := JunctionMask(base)
	om, _ := JunctionMask(overlay)
	return GlyphForMask(bm | om)
}

// mergeCell decides what character results from drawing `overlay` on top of
// `base` at one cell, in Unicode mode. In ASCII mode the overlay always wins
// (no merging, per spec.md §4.1).
func mergeCell(base, overlay rune, useASCII bool) rune {
	if useASCII {
		return overlay
	}
	if overlay == ' ' {
		return base
	}
	if IsJunctionChar(base) && IsJunctionChar(overlay) {
		return mergeJunction(base, overlay)
	}
	return overlay
}

// SetMerged draws a single rune at (x, y) using the same merge rule
// MergeCanvases applies per cell, letting callers composite drawing
// primitives (edge paths, corners, arrowheads) directly onto a shared
// canvas without allocating a same-size overlay per element.
func (c *Canvas) SetMerged(x, y int, r rune, useASCII bool) {
	merged := mergeCell(c.Get(x, y), r, useASCII)
	c.Set(x, y, merged)
}

// MergeCanvases composites `overlays` onto `base` in order, each offset by
// its own (dx, dy). Growing the base canvas as needed. Returns the
// (possibly grown) base canvas.
func MergeCanvases(base *Canvas, useASCII bool, overlays ...struct {
	C      *Canvas
	DX, DY int
}) *Canvas {
	if base == nil {
		base = MkCanvas(0, 0)
	}
	for _, ov := range overlays {
		if ov.C == nil {
			continue
		}
		ox, oy := ov.C.GetCanvasSize()
		base.IncreaseSize(ov.DX+ox, ov.DY+oy)
		for x := 0; x <= ox; x++ {
			for y := 0; y <= oy; y++ {
				r := ov.C.Get(x, y)
				if r == ' ' {
					continue
				}
				bx, by := ov.DX+x, ov.DY+y
				merged := mergeCell(base.Get(bx, by), r, useASCII)
				base.Set(bx, by, merged)
			}
		}
	}
	return base
}

// DeambiguateUnicodeCrossings replaces every '┼' in the canvas with '─' or
// '│'. '┼' means "four-way connection" in box-drawing; flowchart edges that
// merely cross (without connecting) must not render that way. The
// replacement looks at whether neighbouring strokes actually point into the
// cell horizontally or vertically and prefers horizontal on a tie
// (spec.md §4.1, §7 "Crossing not eliminable").
func DeambiguateUnicodeCrossings(c *Canvas) {
	if c == nil {
		return
	}
	maxX, maxY := c.GetCanvasSize()
	var targets [][2]int
	for x := 0; x <= maxX; x++ {
		for y := 0; y <= maxY; y++ {
			if c.Get(x, y) == '┼' {
				targets = append(targets, [2]int{x, y})
			}
		}
	}
	for _, t := range targets {
		x, y := t[0], t[1]
		hCount := 0
		vCount := 0
		if pointsRight(c.Get(x-1, y)) {
			hCount++
		}
		if pointsLeft(c.Get(x+1, y)) {
			hCount++
		}
		if pointsDown(c.Get(x, y-1)) {
			vCount++
		}
		if pointsUp(c.Get(x, y+1)) {
			vCount++
		}
		if hCount >= vCount {
			c.Set(x, y, '─')
		} else {
			c.Set(x, y, '│')
		}
	}
}

func pointsRight(r rune) bool {
	m, ok := JunctionMask(r)
	return ok && m&bitRight != 0
}

func pointsLeft(r rune) bool {
	m, ok := JunctionMask(r)
	return ok && m&bitLeft != 0
}

func pointsDown(r rune) bool {
	m, ok := JunctionMask(r)
	return ok && m&bitDown != 0
}

func pointsUp(r rune) bool {
	m, ok := JunctionMask(r)
	return ok && m&bitUp != 0
}
