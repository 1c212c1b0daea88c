package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/raiscui/beautiful-mermaid/render"
)

// runPreview renders Mermaid source and displays it full-screen via tcell,
// exiting on any keypress. It wires the teacher's tcell dependency directly
// rather than through its backend abstraction layer, since a flowchart
// preview has no widget tree to drive.
func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	in := fs.String("in", "", "input Mermaid file (default stdin)")
	ascii := fs.Bool("ascii", false, "use ASCII box-drawing instead of Unicode")
	cfgPath := fs.String("config", "", "YAML config file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *ascii {
		cfg.UseASCII = true
	}

	src, err := readInput(*in)
	if err != nil {
		return err
	}

	result, err := render.Render(src, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	drawCanvas(screen, result.Canvas)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			drawCanvas(screen, result.Canvas)
			screen.Show()
		}
	}
}

func drawCanvas(screen tcell.Screen, canvasText string) {
	screen.Clear()
	style := tcell.StyleDefault
	for y, line := range strings.Split(canvasText, "\n") {
		x := 0
		for _, r := range line {
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}
