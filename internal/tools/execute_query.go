package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExecuteQueryInput defines the input schema for the execute_query tool.
type ExecuteQueryInput struct {
	SQLQuery string `json:"sqlQuery" jsonschema:"required,SQL SELECT statement to execute verbatim"`
}

// NewExecuteQueryHandler creates the execute_query tool handler.
// The query text is passed through to the database unmodified; results come
// back as a JSON array of column-to-value maps with NULLs preserved.
func NewExecuteQueryHandler(deps *Dependencies) mcp.ToolHandlerFor[ExecuteQueryInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExecuteQueryInput) (*mcp.CallToolResult, any, error) {
		rows, err := deps.Store.Query(ctx, input.SQLQuery)
		if err != nil {
			deps.Logger.Error("query failed", "error", err)
			return FailureResult("Error executing query", err), nil, nil
		}

		return JSONResult(rows, "Error executing query"), nil, nil
	}
}
