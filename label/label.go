// Package label strips inline Markdown emphasis/code spans from node and
// edge label text before it is measured or painted, recording the
// stripped spans so a caller rendering through a styled console can
// re-apply bold/italic/code attributes (spec.md §4.5 ADDED note; the
// character canvas itself carries no styling).
package label

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Span describes one run of the plain-text result that carried inline
// emphasis in the source label.
type Span struct {
	Start, End int // byte offsets into the plain-text result
	Bold       bool
	Italic     bool
	Code       bool
}

var md = goldmark.New()

// Strip parses src as Markdown (goldmark's full parser, the same AST-walk
// approach the teacher's own markdown-in-TUI package uses) and returns the
// plain text plus the style spans it carried. A label is always a single
// short run of text, so only the first paragraph's inline content matters;
// anything goldmark can't turn into a paragraph falls back to a direct
// inline-syntax scan.
func Strip(src string) (string, []Span) {
	if src == "" {
		return "", nil
	}
	source := []byte(src)
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var para ast.Node
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*ast.Paragraph); ok {
			para = c
			break
		}
	}
	if para == nil {
		return scanInline(src)
	}
	var b strings.Builder
	var spans []Span
	walkInline(para, source, &b, &spans, styleState{})
	return b.String(), spans
}

type styleState struct {
	bold, italic, code bool
}

func walkInline(n ast.Node, source []byte, b *strings.Builder, spans *[]Span, st styleState) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			start := b.Len()
			b.Write(v.Segment.Value(source))
			if st.bold || st.italic || st.code {
				*spans = append(*spans, Span{Start: start, End: b.Len(), Bold: st.bold, Italic: st.italic, Code: st.code})
			}
		case *ast.Emphasis:
			next := st
			if v.Level >= 2 {
				next.bold = true
			} else {
				next.italic = true
			}
			walkInline(v, source, b, spans, next)
		case *ast.CodeSpan:
			next := st
			next.code = true
			walkInline(v, source, b, spans, next)
		default:
			walkInline(c, source, b, spans, st)
		}
	}
}

// scanInline is a minimal fallback hand-scanner for **bold**/*italic*/`code`,
// used by Strip only when goldmark's parse yields no paragraph node; ordinary
// label text parses to a paragraph and goes through walkInline instead.
func scanInline(src string) (string, []Span) {
	var b strings.Builder
	var spans []Span
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		switch {
		case match(runes, i, "**"):
			j := indexFrom(runes, i+2, "**")
			if j < 0 {
				b.WriteRune(runes[i])
				i++
				continue
			}
			start := b.Len()
			b.WriteString(string(runes[i+2 : j]))
			spans = append(spans, Span{Start: start, End: b.Len(), Bold: true})
			i = j + 2
		case match(runes, i, "`"):
			j := indexFrom(runes, i+1, "`")
			if j < 0 {
				b.WriteRune(runes[i])
				i++
				continue
			}
			start := b.Len()
			b.WriteString(string(runes[i+1 : j]))
			spans = append(spans, Span{Start: start, End: b.Len(), Code: true})
			i = j + 1
		case match(runes, i, "*"):
			j := indexFrom(runes, i+1, "*")
			if j < 0 {
				b.WriteRune(runes[i])
				i++
				continue
			}
			start := b.Len()
			b.WriteString(string(runes[i+1 : j]))
			spans = append(spans, Span{Start: start, End: b.Len(), Italic: true})
			i = j + 1
		default:
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String(), spans
}

func match(runes []rune, i int, tok string) bool {
	tr := []rune(tok)
	if i+len(tr) > len(runes) {
		return false
	}
	for k, r := range tr {
		if runes[i+k] != r {
			return false
		}
	}
	return true
}

func indexFrom(runes []rune, from int, tok string) int {
	tr := []rune(tok)
	for i := from; i+len(tr) <= len(runes); i++ {
		ok := true
		for k, r := range tr {
			if runes[i+k] != r {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}
