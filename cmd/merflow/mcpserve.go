package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/raiscui/beautiful-mermaid/fur"
	"github.com/raiscui/beautiful-mermaid/mcpserver"
)

func runMCPServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcp-serve", flag.ContinueOnError)
	rateLimit := fs.Float64("rate", 0, "sustained render calls per second (0 disables throttling)")
	burst := fs.Int("burst", 0, "burst size for the rate limiter")
	verbose := fs.Bool("verbose", false, "log debug-level server activity")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logConsole := fur.New(fur.WithOutput(os.Stderr))
	logger := slog.New(fur.NewHandler(fur.HandlerOpts{
		Level:      level,
		ShowTime:   true,
		ShowSource: *verbose,
		Console:    logConsole,
	}))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logConsole.Rule("merflow mcp-serve")
	logger.Info("starting mcp server", "transport", "stdio", "rate", *rateLimit, "burst", *burst)
	srv := mcpserver.New(mcpserver.Options{RateLimit: *rateLimit, Burst: *burst})
	err := srv.ServeStdio(ctx)
	if err != nil {
		logger.Error("mcp server stopped", "error", err)
	} else {
		logger.Info("mcp server stopped")
	}
	logConsole.Rule()
	return err
}
