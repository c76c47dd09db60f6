package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CountRecordsInput defines the input schema for the count_records tool.
type CountRecordsInput struct {
	Table string `json:"table" jsonschema:"required,Name of the table to count (optionally schema-qualified)"`
}

// NewCountRecordsHandler creates the count_records tool handler.
func NewCountRecordsHandler(deps *Dependencies) mcp.ToolHandlerFor[CountRecordsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CountRecordsInput) (*mcp.CallToolResult, any, error) {
		n, err := deps.Store.Count(ctx, input.Table)
		if err != nil {
			deps.Logger.Error("count failed", "table", input.Table, "error", err)
			return FailureResult("Error counting records", err), nil, nil
		}

		return TextResult(fmt.Sprintf("Table '%s' contains %d records.", input.Table, n)), nil, nil
	}
}
