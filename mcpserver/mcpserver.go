// Package mcpserver exposes the render pipeline over MCP (spec.md §6 ADDED
// note), following the teacher's agent/mcp tool-registration idiom: typed
// argument structs bound via req.BindArguments, JSON-envelope results via
// toolResult/toolError, and a stdio transport started in a goroutine.
package mcpserver

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	mcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/raiscui/beautiful-mermaid/config"
	"github.com/raiscui/beautiful-mermaid/render"
)

const (
	invalidParamsCode = -32602
	rateLimitCode     = -32003
	defaultName       = "beautiful-mermaid"
	defaultVersion    = "dev"
	schemaVersion     = 1
)

// Server wraps an MCP server exposing the renderer's two operations.
type Server struct {
	mcp     *mcpserver.MCPServer
	stdio   *mcpserver.StdioServer
	limiter *rate.Limiter
	entropy io.Reader

	ctx    context.Context
	cancel context.CancelFunc
}

// Options configures the server's throttling.
type Options struct {
	// RateLimit caps sustained render calls per second. Zero disables
	// throttling.
	RateLimit float64
	Burst     int
}

// New builds a Server with both tools registered but not yet listening.
func New(opts Options) *Server {
	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = int(opts.RateLimit) + 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	srv := &Server{
		limiter: limiter,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	srv.mcp = mcpserver.NewMCPServer(
		defaultName,
		defaultVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithInstructions("Renders Mermaid flowcharts to a Unicode box-drawing canvas and reverse-parses canvases back to Mermaid."),
	)
	srv.registerTools()
	return srv
}

// ServeStdio runs the server over stdin/stdout until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.stdio = mcpserver.NewStdioServer(s.mcp)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.stdio.Listen(s.ctx, os.Stdin, os.Stdout)
	}()
	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil && s.ctx.Err() == nil {
			log.Printf("mcp stdio server error: %v", err)
		}
		return err
	}
}

// Close stops a running server.
func (s *Server) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Server) registerTools() {
	addTool(s, mcp.NewTool("render_flowchart",
		mcp.WithDescription("Render Mermaid flowchart source to a Unicode (or ASCII) box-drawing canvas."),
		mcp.WithInputSchema[renderArgs](),
	), s.handleRender)
	addTool(s, mcp.NewTool("reverse_parse_ascii",
		mcp.WithDescription("Reconstruct Mermaid flowchart source from a previously rendered canvas."),
		mcp.WithInputSchema[reverseArgs](),
	), s.handleReverse)
}

func addTool(s *Server, tool mcp.Tool, handler mcpserver.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
}

type renderArgs struct {
	Mermaid        string `json:"mermaid"`
	UseASCII       bool   `json:"use_ascii,omitempty"`
	PaddingX       int    `json:"padding_x,omitempty"`
	PaddingY       int    `json:"padding_y,omitempty"`
	GraphDirection string `json:"graph_direction,omitempty"`
}

type reverseArgs struct {
	Canvas    string `json:"canvas"`
	Direction string `json:"direction,omitempty"`
}

func (s *Server) handleRender(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.throttle(); err != nil {
		return nil, err
	}

	var args renderArgs
	if err := req.BindArguments(&args); err != nil {
		return nil, mcpError(invalidParamsCode, err.Error())
	}
	if args.Mermaid == "" {
		return s.toolError("render_flowchart", errors.New("mermaid is required")), nil
	}

	cfg := config.Default()
	cfg.UseASCII = args.UseASCII
	if args.PaddingX > 0 {
		cfg.PaddingX = args.PaddingX
	}
	if args.PaddingY > 0 {
		cfg.PaddingY = args.PaddingY
	}
	if args.GraphDirection != "" {
		cfg.GraphDirection = args.GraphDirection
	}

	result, err := render.Render(args.Mermaid, cfg)
	if err != nil {
		return s.toolError("render_flowchart", err), nil
	}

	diags := make([]string, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		diags[i] = fmt.Sprintf("%s->%s: %s", d.EdgeSource, d.EdgeTarget, d.Message)
	}
	return s.toolResult("render_flowchart", map[string]any{
		"canvas":      result.Canvas,
		"diagnostics": diags,
		"request_id":  s.requestID(),
	}), nil
}

func (s *Server) handleReverse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.throttle(); err != nil {
		return nil, err
	}

	var args reverseArgs
	if err := req.BindArguments(&args); err != nil {
		return nil, mcpError(invalidParamsCode, err.Error())
	}
	if args.Canvas == "" {
		return s.toolError("reverse_parse_ascii", errors.New("canvas is required")), nil
	}
	direction := args.Direction
	if direction == "" {
		direction = "LR"
	}

	mermaid, err := render.ReverseRender(args.Canvas, direction)
	if err != nil {
		return s.toolError("reverse_parse_ascii", err), nil
	}
	return s.toolResult("reverse_parse_ascii", map[string]any{
		"mermaid":    mermaid,
		"request_id": s.requestID(),
	}), nil
}

func (s *Server) throttle() error {
	if s.limiter == nil {
		return nil
	}
	if !s.limiter.Allow() {
		return mcpError(rateLimitCode, "rate limit exceeded")
	}
	return nil
}

func (s *Server) requestID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Server) toolResult(tool string, data any) *mcp.CallToolResult {
	payload := map[string]any{"_schema": schemaVersion, "_tool": tool, "data": data}
	encoded, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.TextContent{Type: "text", Text: string(encoded)}},
		StructuredContent: payload,
	}
}

func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	payload := map[string]any{"_schema": schemaVersion, "_tool": tool, "error": err.Error()}
	encoded, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		IsError:           true,
		Content:           []mcp.Content{mcp.TextContent{Type: "text", Text: string(encoded)}},
		StructuredContent: payload,
	}
}

type mcpErr struct {
	code    int
	message string
}

func (e *mcpErr) Error() string { return e.message }
func (e *mcpErr) MCPCode() int  { return e.code }

func mcpError(code int, message string) error {
	return &mcpErr{code: code, message: message}
}
