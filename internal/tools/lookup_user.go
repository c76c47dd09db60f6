package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookupUserInput defines the input schema for the lookup_user tool.
type LookupUserInput struct {
	Query string `json:"query" jsonschema:"required,Object ID or user principal name; falls back to a name/mail prefix search"`
}

// NewLookupUserHandler creates the lookup_user tool handler.
// A direct hit returns the single user; otherwise all prefix matches
// (possibly an empty array).
func NewLookupUserHandler(deps *Dependencies) mcp.ToolHandlerFor[LookupUserInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LookupUserInput) (*mcp.CallToolResult, any, error) {
		exact, matches, err := deps.Directory.LookupUser(ctx, input.Query)
		if err != nil {
			deps.Logger.Error("user lookup failed", "query", input.Query, "error", err)
			return FailureResult("Error looking up user", err), nil, nil
		}

		if exact != nil {
			return JSONResult(exact, "Error looking up user"), nil, nil
		}
		return JSONResult(matches, "Error looking up user"), nil, nil
	}
}
