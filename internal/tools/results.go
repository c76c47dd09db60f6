package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TextResult creates a success result with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// FailureResult renders a failure through the textual channel: the result is
// still a normal tool response whose text is "{prefix}: {message}". IsError is
// set so hosts that understand the flag can tell, but the text is the contract.
func FailureResult(prefix string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s: %v", prefix, err)},
		},
		IsError: true,
	}
}

// JSONResult serializes v as indented JSON. Marshal failures go through the
// same textual channel as everything else.
func JSONResult(v any, errPrefix string) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return FailureResult(errPrefix, err)
	}
	return TextResult(string(b))
}
