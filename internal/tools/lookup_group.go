package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookupGroupInput defines the input schema for the lookup_group tool.
type LookupGroupInput struct {
	Query string `json:"query" jsonschema:"required,Group object ID; falls back to a name/mail prefix search"`
}

// NewLookupGroupHandler creates the lookup_group tool handler.
func NewLookupGroupHandler(deps *Dependencies) mcp.ToolHandlerFor[LookupGroupInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LookupGroupInput) (*mcp.CallToolResult, any, error) {
		exact, matches, err := deps.Directory.LookupGroup(ctx, input.Query)
		if err != nil {
			deps.Logger.Error("group lookup failed", "query", input.Query, "error", err)
			return FailureResult("Error looking up group", err), nil, nil
		}

		if exact != nil {
			return JSONResult(exact, "Error looking up group"), nil, nil
		}
		return JSONResult(matches, "Error looking up group"), nil, nil
	}
}
