package canvas

import "strings"

// Canvas is a column-major 2D character grid. cells[x][y] is always valid
// for 0<=x<=maxX, 0<=y<=maxY; the initial fill is space (spec.md §3).
type Canvas struct {
	cells [][]rune // cells[x][y]
	maxX  int       // inclusive
	maxY  int       // inclusive
}

// MkCanvas creates a canvas spanning [0,x] x [0,y] inclusive, filled with
// spaces.
func MkCanvas(x, y int) *Canvas {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c := &Canvas{maxX: x, maxY: y}
	c.cells = make([][]rune, x+1)
	for i := range c.cells {
		col := make([]rune, y+1)
		for j := range col {
			col[j] = ' '
		}
		c.cells[i] = col
	}
	return c
}

// GetCanvasSize returns (maxX, maxY) inclusive.
func (c *Canvas) GetCanvasSize() (int, int) {
	if c == nil {
		return -1, -1
	}
	return c.maxX, c.maxY
}

// CopyCanvas returns a deep copy.
func CopyCanvas(c *Canvas) *Canvas {
	if c == nil {
		return nil
	}
	out := MkCanvas(c.maxX, c.maxY)
	for x := range c.cells {
		copy(out.cells[x], c.cells[x])
	}
	return out
}

// IncreaseSize grows the canvas to at least (x, y) inclusive, preserving
// existing content. It never shrinks.
func (c *Canvas) IncreaseSize(x, y int) {
	if x > c.maxX {
		for i := c.maxX + 1; i <= x; i++ {
			col := make([]rune, c.maxY+1)
			for j := range col {
				col[j] = ' '
			}
			c.cells = append(c.cells, col)
		}
		c.maxX = x
	}
	if y > c.maxY {
		for i := range c.cells {
			for j := c.maxY + 1; j <= y; j++ {
				c.cells[i] = append(c.cells[i], ' ')
			}
		}
		c.maxY = y
	}
}

// Get returns the rune at (x, y), or space if out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if c == nil || x < 0 || y < 0 || x > c.maxX || y > c.maxY {
		return ' '
	}
	return c.cells[x][y]
}

// Set places a rune at (x, y), growing the canvas if necessary.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 {
		return
	}
	if x > c.maxX || y > c.maxY {
		c.IncreaseSize(max(x, c.maxX), max(y, c.maxY))
	}
	c.cells[x][y] = r
}

// SetCanvasSizeToGrid grows the canvas so that its size matches at least
// (x, y) inclusive, used after layout computes final grid extents.
func (c *Canvas) SetCanvasSizeToGrid(x, y int) {
	c.IncreaseSize(x, y)
}

// DrawText writes text starting at (x, y), advancing by each code point's
// display width, growing the canvas as needed.
func (c *Canvas) DrawText(x, y int, text string) {
	cx := x
	for _, r := range text {
		w := displayWidth(r)
		if w == 0 {
			continue
		}
		c.Set(cx, y, r)
		cx += w
	}
}

// CanvasToString renders the canvas to a newline-joined string. After every
// wide (display-width-2) code point, the following cell is skipped so the
// terminal column count matches the canvas column count.
func CanvasToString(c *Canvas) string {
	if c == nil || c.maxX < 0 || c.maxY < 0 {
		return ""
	}
	var rows []string
	for y := 0; y <= c.maxY; y++ {
		var b strings.Builder
		x := 0
		for x <= c.maxX {
			r := c.cells[x][y]
			b.WriteRune(r)
			w := displayWidth(r)
			if w == 2 {
				x += 2
			} else {
				x++
			}
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(rows, "\n")
}

// FlipCanvasVertically reverses row order, used for bottom-to-top flow
// directions (RL/BT folded by the caller per spec.md §6).
func FlipCanvasVertically(c *Canvas) *Canvas {
	if c == nil {
		return nil
	}
	out := MkCanvas(c.maxX, c.maxY)
	for x := range c.cells {
		for y := 0; y <= c.maxY; y++ {
			out.cells[x][y] = c.cells[x][c.maxY-y]
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
