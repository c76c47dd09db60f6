package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stackbridge/entrasql/internal/sqldata"
)

// ReadRecordInput defines the input schema for the read_record tool.
type ReadRecordInput struct {
	Table     string `json:"table" jsonschema:"required,Name of the table to read from"`
	KeyColumn string `json:"keyColumn" jsonschema:"required,Name of the key column to match"`
	ID        string `json:"id" jsonschema:"required,Key value of the record to read"`
}

// NewReadRecordHandler creates the read_record tool handler.
// Returns the first matching row as indented JSON with NULL columns preserved.
func NewReadRecordHandler(deps *Dependencies) mcp.ToolHandlerFor[ReadRecordInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReadRecordInput) (*mcp.CallToolResult, any, error) {
		row, err := deps.Store.Read(ctx, input.Table, input.KeyColumn, input.ID)
		if errors.Is(err, sqldata.ErrNotFound) {
			return TextResult("Record not found."), nil, nil
		}
		if err != nil {
			deps.Logger.Error("read failed", "table", input.Table, "error", err)
			return FailureResult("Error reading record", err), nil, nil
		}

		return JSONResult(row, "Error reading record"), nil, nil
	}
}
