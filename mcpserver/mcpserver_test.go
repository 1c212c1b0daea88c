package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	mcp "github.com/mark3labs/mcp-go/mcp"
)

func callToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestHandleRenderProducesCanvas(t *testing.T) {
	s := New(Options{})
	req := callToolRequest("render_flowchart", map[string]any{
		"mermaid": "flowchart LR\n  A --> B",
	})
	result, err := s.handleRender(context.Background(), req)
	if err != nil {
		t.Fatalf("handleRender returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.StructuredContent)
	}
	payload, ok := result.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content not a map: %T", result.StructuredContent)
	}
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data field")
	}
	canvas, _ := data["canvas"].(string)
	if canvas == "" {
		t.Fatal("expected non-empty canvas")
	}
	if _, ok := data["request_id"].(string); !ok {
		t.Fatal("expected request_id in result")
	}
}

func TestHandleRenderMissingMermaid(t *testing.T) {
	s := New(Options{})
	req := callToolRequest("render_flowchart", map[string]any{})
	result, err := s.handleRender(context.Background(), req)
	if err != nil {
		t.Fatalf("handleRender returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for missing mermaid")
	}
}

func TestHandleReverseRoundTrip(t *testing.T) {
	s := New(Options{})
	renderReq := callToolRequest("render_flowchart", map[string]any{
		"mermaid": "flowchart LR\n  A --> B",
	})
	renderResult, err := s.handleRender(context.Background(), renderReq)
	if err != nil {
		t.Fatalf("handleRender returned error: %v", err)
	}
	payload := renderResult.StructuredContent.(map[string]any)
	data := payload["data"].(map[string]any)
	canvasText := data["canvas"].(string)

	reverseReq := callToolRequest("reverse_parse_ascii", map[string]any{
		"canvas": canvasText,
	})
	reverseResult, err := s.handleReverse(context.Background(), reverseReq)
	if err != nil {
		t.Fatalf("handleReverse returned error: %v", err)
	}
	if reverseResult.IsError {
		t.Fatalf("unexpected reverse error: %+v", reverseResult.StructuredContent)
	}
}

func TestThrottleRejectsOverLimit(t *testing.T) {
	s := New(Options{RateLimit: 0.001, Burst: 1})
	if err := s.throttle(); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if err := s.throttle(); err == nil {
		t.Fatal("expected second call to be rate limited")
	}
}

func TestToolResultEnvelopeIsJSON(t *testing.T) {
	s := New(Options{})
	result := s.toolResult("render_flowchart", map[string]any{"canvas": "x"})
	text := result.Content[0].(mcp.TextContent).Text
	var decoded map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("tool result text is not valid JSON: %v", err)
	}
	if decoded["_tool"] != "render_flowchart" {
		t.Fatalf("unexpected _tool field: %v", decoded["_tool"])
	}
}
