package fur

import (
	"fmt"
	"strconv"
	"strings"
)

// colorKind distinguishes how a Color's code should be translated to an SGR
// parameter.
type colorKind uint8

const (
	colorKindNone colorKind = iota
	colorKindDefault
	colorKindANSI
	colorKind256
	colorKindRGB
)

// Color represents a terminal color. The teacher's own color engine lived in
// a `compositor` package this module never received a copy of, so Color's
// SGR encoding is reimplemented here directly against the ANSI/xterm-256/
// truecolor escape sequences it covers.
type Color struct {
	kind    colorKind
	code    uint8
	r, g, b uint8
}

// Color helpers.
var (
	ColorNone    = Color{kind: colorKindNone}
	ColorDefault = Color{kind: colorKindDefault}

	ColorBlack   = Color{kind: colorKindANSI, code: 0}
	ColorRed     = Color{kind: colorKindANSI, code: 1}
	ColorGreen   = Color{kind: colorKindANSI, code: 2}
	ColorYellow  = Color{kind: colorKindANSI, code: 3}
	ColorBlue    = Color{kind: colorKindANSI, code: 4}
	ColorMagenta = Color{kind: colorKindANSI, code: 5}
	ColorCyan    = Color{kind: colorKindANSI, code: 6}
	ColorWhite   = Color{kind: colorKindANSI, code: 7}

	ColorBrightBlack   = Color{kind: colorKindANSI, code: 8}
	ColorBrightRed     = Color{kind: colorKindANSI, code: 9}
	ColorBrightGreen   = Color{kind: colorKindANSI, code: 10}
	ColorBrightYellow  = Color{kind: colorKindANSI, code: 11}
	ColorBrightBlue    = Color{kind: colorKindANSI, code: 12}
	ColorBrightMagenta = Color{kind: colorKindANSI, code: 13}
	ColorBrightCyan    = Color{kind: colorKindANSI, code: 14}
	ColorBrightWhite   = Color{kind: colorKindANSI, code: 15}
)

// Color256 creates a 256-palette color (0-255).
func Color256(index uint8) Color {
	return Color{kind: colorKind256, code: index}
}

// RGB creates a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorKindRGB, r: r, g: g, b: b}
}

// Hex creates a color from hex value (0xRRGGBB).
func Hex(hex uint32) Color {
	return RGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// Convenience color aliases.
var (
	Black   = ColorBlack
	Red     = ColorRed
	Green   = ColorGreen
	Yellow  = ColorYellow
	Blue    = ColorBlue
	Magenta = ColorMagenta
	Cyan    = ColorCyan
	White   = ColorWhite

	BrightBlack   = ColorBrightBlack
	BrightRed     = ColorBrightRed
	BrightGreen   = ColorBrightGreen
	BrightYellow  = ColorBrightYellow
	BrightBlue    = ColorBrightBlue
	BrightMagenta = ColorBrightMagenta
	BrightCyan    = ColorBrightCyan
	BrightWhite   = ColorBrightWhite
)

// Style defines text styling used by fur renderables.
type Style struct {
	fg            Color
	bg            Color
	bold          bool
	dim           bool
	italic        bool
	underline     bool
	blink         bool
	reverse       bool
	strikethrough bool
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Bold enables bold.
func (s Style) Bold() Style {
	s.bold = true
	return s
}

// Dim enables dim.
func (s Style) Dim() Style {
	s.dim = true
	return s
}

// Italic enables italic.
func (s Style) Italic() Style {
	s.italic = true
	return s
}

// Underline enables underline.
func (s Style) Underline() Style {
	s.underline = true
	return s
}

// Blink enables blink.
func (s Style) Blink() Style {
	s.blink = true
	return s
}

// Reverse enables reverse video.
func (s Style) Reverse() Style {
	s.reverse = true
	return s
}

// Strikethrough enables strikethrough.
func (s Style) Strikethrough() Style {
	s.strikethrough = true
	return s
}

// Equal reports whether two styles are identical.
func (s Style) Equal(other Style) bool {
	return s.fg == other.fg &&
		s.bg == other.bg &&
		s.bold == other.bold &&
		s.dim == other.dim &&
		s.italic == other.italic &&
		s.underline == other.underline &&
		s.blink == other.blink &&
		s.reverse == other.reverse &&
		s.strikethrough == other.strikethrough
}

// Style helpers.
var (
	Bold          = DefaultStyle().Bold()
	Italic        = DefaultStyle().Italic()
	Underline     = DefaultStyle().Underline()
	Dim           = DefaultStyle().Dim()
	Strikethrough = DefaultStyle().Strikethrough()
)

// ANSI control sequences: Console.Clear writes the clear-screen and
// cursor-home pair, and Console.writeLines writes ANSIReset after styled
// output.
const (
	ansiEscape      = "\x1b["
	ANSIReset       = ansiEscape + "0m"
	ANSIClearScreen = ansiEscape + "2J"
	ANSICursorHome  = ansiEscape + "H"
	ANSIClearLine   = ansiEscape + "2K\r"
)

// CursorUp returns the escape sequence that moves the cursor up n lines.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return ansiEscape + strconv.Itoa(n) + "A"
}

// StyleToANSI renders a style as a single SGR escape sequence.
func StyleToANSI(s Style) string {
	var codes []string
	if s.bold {
		codes = append(codes, "1")
	}
	if s.dim {
		codes = append(codes, "2")
	}
	if s.italic {
		codes = append(codes, "3")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.blink {
		codes = append(codes, "5")
	}
	if s.reverse {
		codes = append(codes, "7")
	}
	if s.strikethrough {
		codes = append(codes, "9")
	}
	if code := colorCode(s.fg, false); code != "" {
		codes = append(codes, code)
	}
	if code := colorCode(s.bg, true); code != "" {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return ""
	}
	return ansiEscape + strings.Join(codes, ";") + "m"
}

func colorCode(c Color, background bool) string {
	base := 30
	if background {
		base = 40
	}
	switch c.kind {
	case colorKindANSI:
		if c.code < 8 {
			return strconv.Itoa(base + int(c.code))
		}
		return strconv.Itoa(base + 60 + int(c.code-8))
	case colorKind256:
		prefix := 38
		if background {
			prefix = 48
		}
		return fmt.Sprintf("%d;5;%d", prefix, c.code)
	case colorKindRGB:
		prefix := 38
		if background {
			prefix = 48
		}
		return fmt.Sprintf("%d;2;%d;%d;%d", prefix, c.r, c.g, c.b)
	case colorKindDefault:
		return strconv.Itoa(base + 9)
	default:
		return ""
	}
}
