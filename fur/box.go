package fur

import "strings"

// Box draws a bordered panel around a rendered body, wrapping it to width.
func Box(title string, body Renderable, width int) Renderable {
	return boxRenderable{title: title, body: body, width: width, style: DefaultStyle()}
}

// BoxWith draws a bordered panel with an explicit border style.
func BoxWith(title string, body Renderable, width int, borderStyle Style) Renderable {
	return boxRenderable{title: title, body: body, width: width, style: borderStyle}
}

type boxRenderable struct {
	title string
	body  Renderable
	width int
	style Style
}

func (b boxRenderable) Render(width int) []Line {
	w := b.width
	if w <= 0 {
		w = width
	}
	inner := w - 2
	if inner < 1 {
		inner = 1
	}
	var content []Line
	if b.body != nil {
		content = wrapLines(b.body.Render(inner), inner)
	}
	return renderBox(b.title, content, w, b.style)
}

func renderBox(title string, content []Line, width int, borderStyle Style) []Line {
	if len(content) == 0 {
		content = []Line{{}}
	}
	title = strings.TrimSpace(title)
	contentWidth := 0
	for _, line := range content {
		if w := lineWidth(line); w > contentWidth {
			contentWidth = w
		}
	}
	titleText := ""
	titleWidth := 0
	if title != "" {
		titleText = " " + title + " "
		titleWidth = stringWidth(titleText)
	}
	if width <= 0 {
		inner := contentWidth
		if titleWidth > inner {
			inner = titleWidth
		}
		width = inner + 2
	}
	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	if titleWidth > innerWidth {
		titleText = truncateString(titleText, innerWidth)
		titleWidth = stringWidth(titleText)
	}

	var out []Line
	if titleText == "" {
		out = append(out, Line{{Text: "╭" + strings.Repeat("─", innerWidth) + "╮", Style: borderStyle}})
	} else {
		remaining := innerWidth - titleWidth
		left := remaining / 2
		right := remaining - left
		line := "╭" + strings.Repeat("─", left) + titleText + strings.Repeat("─", right) + "╮"
		out = append(out, Line{{Text: line, Style: borderStyle}})
	}

	for _, line := range content {
		line = padLine(line, innerWidth)
		var boxed Line
		boxed = append(boxed, Span{Text: "│", Style: borderStyle})
		boxed = append(boxed, line...)
		boxed = append(boxed, Span{Text: "│", Style: borderStyle})
		out = append(out, boxed)
	}

	out = append(out, Line{{Text: "╰" + strings.Repeat("─", innerWidth) + "╯", Style: borderStyle}})
	return out
}
