// Package mermaidsrc parses the Mermaid flowchart text subset this module
// renders — node declarations, edges (with optional labels and arrow
// styles), and subgraph blocks — into a graph.Graph. It is the external
// collaborator spec.md §1/§6 describes as out of the router/canvas core's
// scope; this implementation exists so the pipeline is runnable end to end.
package mermaidsrc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raiscui/beautiful-mermaid/graph"
)

var (
	directionHeader = regexp.MustCompile(`(?i)^flowchart\s+(LR|TD|RL|TB|BT)\s*$`)
	subgraphStart   = regexp.MustCompile(`(?i)^subgraph\s+(\w+)(?:\s*\[(.+?)\])?\s*$`)
	subgraphEnd     = regexp.MustCompile(`(?i)^end\s*$`)

	// node shape forms, tried longest-bracket-pair first.
	shapeForms = []struct {
		re    *regexp.Regexp
		shape graph.Shape
	}{
		{regexp.MustCompile(`^(\w+)\(\((.+?)\)\)$`), graph.ShapeCircle},
		{regexp.MustCompile(`^(\w+)\{\{(.+?)\}\}$`), graph.ShapeSubroutine},
		{regexp.MustCompile(`^(\w+)\(\[(.+?)\]\)$`), graph.ShapeStadium},
		{regexp.MustCompile(`^(\w+)\{(.+?)\}$`), graph.ShapeDiamond},
		{regexp.MustCompile(`^(\w+)\((.+?)\)$`), graph.ShapeRound},
		{regexp.MustCompile(`^(\w+)\[(.+?)\]$`), graph.ShapeRect},
	}

	edgeLine = regexp.MustCompile(
		`^(\w+(?:(?:\[(?:.+?)\])|(?:\((?:.+?)\))|(?:\{(?:.+?)\}))?)\s*` +
			`(-->|---|==>|===|-\.->|\.->)\s*` +
			`(?:\|(.+?)\|\s*)?` +
			`(\w+(?:(?:\[(?:.+?)\])|(?:\((?:.+?)\))|(?:\{(?:.+?)\}))?)\s*$`)
)

// ParseError reports a line the parser could not make sense of. render.Render
// treats this as the one case where the pipeline must fail closed rather than
// emit a diagnostic and continue (spec.md §7 ADDED note).
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mermaidsrc: line %d: cannot parse %q", e.Line, e.Text)
}

// Parse converts Mermaid flowchart source into a graph.Graph.
func Parse(src string) (*graph.Graph, error) {
	dir := graph.TD
	g := graph.NewGraph(dir)

	var subgraphStack []*graph.Subgraph
	var roots []*graph.Subgraph

	lines := strings.Split(src, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "graph ") {
			line = "flowchart " + strings.TrimSpace(line[len("graph "):])
		}
		if m := directionHeader.FindStringSubmatch(line); m != nil {
			switch strings.ToUpper(m[1]) {
			case "LR", "RL":
				g.Direction = graph.LR
			default:
				g.Direction = graph.TD
			}
			continue
		}
		if m := subgraphStart.FindStringSubmatch(line); m != nil {
			sg := &graph.Subgraph{ID: m[1], Label: m[2]}
			if sg.Label == "" {
				sg.Label = sg.ID
			}
			if len(subgraphStack) > 0 {
				parent := subgraphStack[len(subgraphStack)-1]
				sg.Depth = parent.Depth + 1
				parent.Children = append(parent.Children, sg)
			} else {
				roots = append(roots, sg)
			}
			subgraphStack = append(subgraphStack, sg)
			continue
		}
		if subgraphEnd.MatchString(line) {
			if len(subgraphStack) == 0 {
				return nil, &ParseError{Line: i + 1, Text: raw}
			}
			subgraphStack = subgraphStack[:len(subgraphStack)-1]
			continue
		}

		if m := edgeLine.FindStringSubmatch(line); m != nil {
			fromID, fromLabel, fromShape := splitNodeToken(m[1])
			toID, toLabel, toShape := splitNodeToken(m[4])
			fromNode := g.AddNode(fromID, fromLabel, fromShape)
			toNode := g.AddNode(toID, toLabel, toShape)
			assignSubgraph(fromNode, subgraphStack)
			assignSubgraph(toNode, subgraphStack)

			e := &graph.Edge{
				Source:        fromID,
				Target:        toID,
				Label:         strings.TrimSpace(m[3]),
				Style:         edgeStyle(m[2]),
				HasArrowStart: false,
				HasArrowEnd:   strings.Contains(m[2], ">"),
			}
			g.AddEdge(e)
			continue
		}

		if id, label, shape, ok := parseNodeOnly(line); ok {
			n := g.AddNode(id, label, shape)
			assignSubgraph(n, subgraphStack)
			continue
		}

		return nil, &ParseError{Line: i + 1, Text: raw}
	}

	if len(subgraphStack) != 0 {
		return nil, &ParseError{Line: len(lines), Text: "unterminated subgraph"}
	}
	g.Subgraphs = roots
	return g, nil
}

func edgeStyle(arrow string) graph.EdgeStyle {
	switch {
	case strings.Contains(arrow, "."):
		return graph.StyleDashed
	case strings.Contains(arrow, "="):
		return graph.StyleThick
	default:
		return graph.StyleSolid
	}
}

// splitNodeToken splits a token like `A["label"]` into id/label/shape. A bare
// id with no bracket form yields id==label, ShapeRect.
func splitNodeToken(tok string) (id, label string, shape graph.Shape) {
	tok = strings.TrimSpace(tok)
	for _, f := range shapeForms {
		if m := f.re.FindStringSubmatch(tok); m != nil {
			return m[1], strings.Trim(m[2], `"`), f.shape
		}
	}
	return tok, tok, graph.ShapeRect
}

func parseNodeOnly(line string) (id, label string, shape graph.Shape, ok bool) {
	for _, f := range shapeForms {
		if m := f.re.FindStringSubmatch(line); m != nil {
			return m[1], strings.Trim(m[2], `"`), f.shape, true
		}
	}
	if regexp.MustCompile(`^\w+$`).MatchString(line) {
		return line, line, graph.ShapeRect, true
	}
	return "", "", 0, false
}

func assignSubgraph(n *graph.Node, stack []*graph.Subgraph) {
	if len(stack) == 0 {
		return
	}
	top := stack[len(stack)-1]
	if n.SubgraphID == "" {
		n.SubgraphID = top.ID
	}
	for _, sg := range stack {
		found := false
		for _, existing := range sg.NodeIDs {
			if existing == n.ID {
				found = true
				break
			}
		}
		if !found {
			sg.NodeIDs = append(sg.NodeIDs, n.ID)
		}
	}
}
