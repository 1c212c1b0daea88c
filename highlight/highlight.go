// Package highlight provides syntax-highlighted echo of the input Mermaid
// source text for the CLI's --show-source flag, using the same chroma
// dependency the teacher's go.mod already carries.
package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// MermaidSource returns an ANSI-highlighted rendering of Mermaid source
// text. Chroma has no built-in Mermaid lexer, so the input is tokenized
// with a YAML-adjacent generic lexer tuned for indented, keyword-led
// syntax (close enough to Mermaid's `flowchart`/`subgraph`/arrow grammar to
// produce a readable echo) and falls back to the plain-text lexer if even
// that cannot be resolved.
func MermaidSource(src string, ascii bool) (string, error) {
	if ascii {
		return src, nil
	}
	lexer := lexers.Get("yaml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src, err
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src, err
	}
	return buf.String(), nil
}
