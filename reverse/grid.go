// Package reverse turns rendered character art back into Mermaid flowchart
// text: grid reconstruction, box detection, arrow tracing, multi-source
// disambiguation, label extraction and text emission (spec.md §4.6).
package reverse

import "github.com/raiscui/beautiful-mermaid/canvas"

const placeholder = 0 // rune value 0 marks a wide-character continuation cell

// Grid is a reconstructed parser grid: rows of runes with an explicit
// placeholder cell inserted after every wide code point, so printed columns
// map 1:1 onto grid columns.
type Grid struct {
	Rows  [][]rune
	Width int
}

// BuildGrid splits src on newlines and widens every row to the grid's
// overall max width, inserting a placeholder after each wide code point.
func BuildGrid(src string) *Grid {
	var lines []string
	start := 0
	for i := 0; i <= len(src); i++ {
		if i == len(src) || src[i] == '\n' {
			lines = append(lines, src[start:i])
			start = i + 1
		}
	}
	g := &Grid{}
	for _, line := range lines {
		var row []rune
		for _, r := range line {
			row = append(row, r)
			if canvas.RuneWidth(r) == 2 {
				row = append(row, placeholder)
			}
		}
		g.Rows = append(g.Rows, row)
		if len(row) > g.Width {
			g.Width = len(row)
		}
	}
	for i, row := range g.Rows {
		for len(row) < g.Width {
			row = append(row, ' ')
		}
		g.Rows[i] = row
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.Rows) }

// At returns the rune at (x, y), or space out of bounds.
func (g *Grid) At(x, y int) rune {
	if y < 0 || y >= len(g.Rows) || x < 0 || x >= g.Width {
		return ' '
	}
	r := g.Rows[y][x]
	if r == placeholder {
		return ' '
	}
	return r
}

// IsPlaceholder reports whether (x, y) is a wide-character continuation
// cell rather than real content.
func (g *Grid) IsPlaceholder(x, y int) bool {
	return y >= 0 && y < len(g.Rows) && x >= 0 && x < g.Width && g.Rows[y][x] == placeholder
}

func isTopBorder(r rune) bool  { return r == '─' || r == '┌' || r == '┐' || r == '-' || r == '+' }
func isSideBorder(r rune) bool { return r == '│' || r == '|' }
func isCorner(r rune) bool {
	switch r {
	case '┌', '┐', '└', '┘', '+':
		return true
	default:
		return false
	}
}
func isSourceMarker(r rune) bool {
	switch r {
	case '├', '┤', '┬', '┴', '┼':
		return true
	default:
		return false
	}
}
func isArrow(r rune) bool {
	switch r {
	case '▲', '▼', '◄', '►', '◤', '◥', '◣', '◢', '^', 'v', '<', '>', '*':
		return true
	default:
		return false
	}
}
func isStructural(r rune) bool {
	return r == ' ' || isTopBorder(r) || isSideBorder(r) || isCorner(r) || isSourceMarker(r) || isArrow(r)
}
func isLabelChar(r rune) bool {
	return r != ' ' && !isStructural(r)
}
