package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UpdateRecordInput defines the input schema for the update_record tool.
type UpdateRecordInput struct {
	Table     string `json:"table" jsonschema:"required,Name of the table to update"`
	KeyColumn string `json:"keyColumn" jsonschema:"required,Name of the key column to match"`
	ID        string `json:"id" jsonschema:"required,Key value of the record to update"`
	JSONData  string `json:"jsonData" jsonschema:"required,JSON object mapping column names to new values"`
}

// NewUpdateRecordHandler creates the update_record tool handler.
func NewUpdateRecordHandler(deps *Dependencies) mcp.ToolHandlerFor[UpdateRecordInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input UpdateRecordInput) (*mcp.CallToolResult, any, error) {
		values := map[string]any{}
		if err := json.Unmarshal([]byte(input.JSONData), &values); err != nil {
			return FailureResult("Error updating record", err), nil, nil
		}

		affected, err := deps.Store.Update(ctx, input.Table, input.KeyColumn, input.ID, values)
		if err != nil {
			deps.Logger.Error("update failed", "table", input.Table, "error", err)
			return FailureResult("Error updating record", err), nil, nil
		}

		if affected > 0 {
			return TextResult("Record updated successfully."), nil, nil
		}
		return TextResult("No record updated."), nil, nil
	}
}
