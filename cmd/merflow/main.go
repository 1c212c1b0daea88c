// Command merflow is the developer-facing entry point for the flowchart
// renderer: render Mermaid source to a canvas, reverse a canvas back to
// Mermaid, serve the two operations over MCP, or preview a render live in
// the terminal (spec.md §6 external interfaces).
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "-h", "--help", "help":
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "reverse":
		err = runReverse(os.Args[2:])
	case "mcp-serve":
		err = runMCPServe(context.Background(), os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `merflow - Mermaid flowchart ASCII/Unicode renderer

usage:
  merflow render [--in file.mmd] [--out file] [--ascii] [--config merflow.yaml] [--show-source]
  merflow reverse [--in file] [--direction LR|RL|TD|TB|BT] [--out file.mmd]
  merflow mcp-serve [--rate N] [--burst N] [--verbose]
  merflow preview [--in file.mmd] [--ascii] [--config merflow.yaml]
`)
}
