package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/raiscui/beautiful-mermaid/config"
	"github.com/raiscui/beautiful-mermaid/fur"
	"github.com/raiscui/beautiful-mermaid/highlight"
	"github.com/raiscui/beautiful-mermaid/render"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	in := fs.String("in", "", "input Mermaid file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	ascii := fs.Bool("ascii", false, "use ASCII box-drawing instead of Unicode")
	cfgPath := fs.String("config", "", "YAML config file")
	showSource := fs.Bool("show-source", false, "echo the highlighted Mermaid source to stderr before rendering")
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

	if *showSource {
		echoed, err := highlight.MermaidSource(src, *ascii)
		if err != nil {
			return fmt.Errorf("highlight source: %w", err)
		}
		fmt.Fprintln(os.Stderr, echoed)
	}

	result, err := render.Render(src, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if len(result.Diagnostics) > 0 {
		warn := fur.New(fur.WithOutput(os.Stderr))
		lines := make([]fur.Renderable, len(result.Diagnostics))
		for i, d := range result.Diagnostics {
			lines[i] = fur.Markup(fmt.Sprintf("[yellow bold]edge %s->%s:[/] %s", d.EdgeSource, d.EdgeTarget, d.Message))
		}
		warn.Render(fur.BoxWith("routing diagnostics", fur.Group(lines...), warn.Width(), fur.DefaultStyle().Foreground(fur.ColorYellow)))
	}
	return writeOutput(*out, result.Canvas)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
