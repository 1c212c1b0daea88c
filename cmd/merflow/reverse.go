package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/raiscui/beautiful-mermaid/render"
)

func runReverse(args []string) error {
	fs := flag.NewFlagSet("reverse", flag.ContinueOnError)
	in := fs.String("in", "", "input canvas file (default stdin)")
	out := fs.String("out", "", "output Mermaid file (default stdout)")
	direction := fs.String("direction", "LR", "original graph direction: LR, RL, TD, TB, BT")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readInput(*in)
	if err != nil {
		return err
	}

	mermaid, err := render.ReverseRender(text, *direction)
	if err != nil {
		return fmt.Errorf("reverse: %w", err)
	}
	return writeOutput(*out, mermaid)
}
