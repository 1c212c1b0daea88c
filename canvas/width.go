package canvas

// displayWidth returns the terminal column width of a single code point,
// per spec.md §4.1's exact ranges. This governs every x-axis computation in
// the pipeline (column widths, label lengths, canvas-to-string emission, and
// the reverse parser's grid reconstruction) and must not defer to a generic
// East-Asian-Width table, which disagrees with these ranges at the edges
// (see DESIGN.md's "canvas" entry).
func displayWidth(r rune) int {
	switch {
	case isZeroWidth(r):
		return 0
	case isWide(r):
		return 2
	default:
		return 1
	}
}

func isZeroWidth(r rune) bool {
	switch {
	case r < 0x20, r == 0x7f:
		return true // control code points
	case r >= 0x0300 && r <= 0x036F:
		return true // combining diacriticals
	case r >= 0x1AB0 && r <= 0x1AFF:
		return true // combining diacriticals extended
	case r >= 0x1DC0 && r <= 0x1DFF:
		return true // combining diacriticals supplement
	case r >= 0x20D0 && r <= 0x20FF:
		return true // combining marks for symbols
	case r >= 0xFE20 && r <= 0xFE2F:
		return true // combining half marks
	default:
		return false
	}
}

func isWide(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F:
		return true // Hangul Jamo initial consonants
	case r >= 0x2E80 && r <= 0xA4CF:
		return true // CJK radicals through Yi
	case r >= 0xAC00 && r <= 0xD7A3:
		return true // Hangul syllables
	case r >= 0xF900 && r <= 0xFAFF:
		return true // CJK compatibility ideographs
	case r >= 0xFF00 && r <= 0xFF60:
		return true // fullwidth forms
	case r >= 0xFFE0 && r <= 0xFFE6:
		return true // fullwidth signs
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true // misc symbols/pictographs through extended-A
	case r >= 0x1F900 && r <= 0x1F9FF:
		return true // supplemental symbols and pictographs
	default:
		return false
	}
}

// StringWidth returns the total display width of a string.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += displayWidth(r)
	}
	return w
}

// RuneWidth exposes displayWidth for callers outside the package (the
// reverse parser's grid reconstruction needs it column-by-column).
func RuneWidth(r rune) int { return displayWidth(r) }
