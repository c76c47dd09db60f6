package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DeleteRecordInput defines the input schema for the delete_record tool.
type DeleteRecordInput struct {
	Table     string `json:"table" jsonschema:"required,Name of the table to delete from"`
	KeyColumn string `json:"keyColumn" jsonschema:"required,Name of the key column to match"`
	ID        string `json:"id" jsonschema:"required,Key value of the record to delete"`
}

// NewDeleteRecordHandler creates the delete_record tool handler.
func NewDeleteRecordHandler(deps *Dependencies) mcp.ToolHandlerFor[DeleteRecordInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteRecordInput) (*mcp.CallToolResult, any, error) {
		affected, err := deps.Store.Delete(ctx, input.Table, input.KeyColumn, input.ID)
		if err != nil {
			deps.Logger.Error("delete failed", "table", input.Table, "error", err)
			return FailureResult("Error deleting record", err), nil, nil
		}

		if affected > 0 {
			return TextResult("Record deleted successfully."), nil, nil
		}
		return TextResult("No record deleted."), nil, nil
	}
}
