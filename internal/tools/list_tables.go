package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListTablesInput defines the (empty) input schema for the list_tables tool.
type ListTablesInput struct{}

// NewListTablesHandler creates the list_tables tool handler.
// Returns all base tables ordered by schema then name.
func NewListTablesHandler(deps *Dependencies) mcp.ToolHandlerFor[ListTablesInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListTablesInput) (*mcp.CallToolResult, any, error) {
		tables, err := deps.Store.ListTables(ctx)
		if err != nil {
			deps.Logger.Error("list tables failed", "error", err)
			return FailureResult("Error listing tables", err), nil, nil
		}

		return JSONResult(tables, "Error listing tables"), nil, nil
	}
}
