package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateRecordInput defines the input schema for the create_record tool.
type CreateRecordInput struct {
	Table    string `json:"table" jsonschema:"required,Name of the table to insert into"`
	JSONData string `json:"jsonData" jsonschema:"required,JSON object mapping column names to values"`
}

// NewCreateRecordHandler creates the create_record tool handler.
// Inserts one row and reports the generated identity value.
func NewCreateRecordHandler(deps *Dependencies) mcp.ToolHandlerFor[CreateRecordInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateRecordInput) (*mcp.CallToolResult, any, error) {
		values := map[string]any{}
		if err := json.Unmarshal([]byte(input.JSONData), &values); err != nil {
			return FailureResult("Error creating record", err), nil, nil
		}

		id, err := deps.Store.Insert(ctx, input.Table, values)
		if err != nil {
			deps.Logger.Error("insert failed", "table", input.Table, "error", err)
			return FailureResult("Error creating record", err), nil, nil
		}

		return TextResult(fmt.Sprintf("Inserted record with ID: %d", id)), nil, nil
	}
}
