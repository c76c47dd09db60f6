package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookupApplicationInput defines the input schema for the lookup_application tool.
type LookupApplicationInput struct {
	Query string `json:"query" jsonschema:"required,Application (client) ID or display name prefix"`
}

// NewLookupApplicationHandler creates the lookup_application tool handler.
// Always a filtered search, never a direct-by-key fetch.
func NewLookupApplicationHandler(deps *Dependencies) mcp.ToolHandlerFor[LookupApplicationInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LookupApplicationInput) (*mcp.CallToolResult, any, error) {
		apps, err := deps.Directory.LookupApplications(ctx, input.Query)
		if err != nil {
			deps.Logger.Error("application lookup failed", "query", input.Query, "error", err)
			return FailureResult("Error looking up application", err), nil, nil
		}

		return JSONResult(apps, "Error looking up application"), nil, nil
	}
}
