package fur

// extractText flattens rendered lines back into plain text, stripping style
// information, for assertions that only care about the visible characters.
func extractText(lines []Line) string {
	var out []byte
	for i, line := range lines {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, span := range line {
			out = append(out, span.Text...)
		}
	}
	return string(out)
}
