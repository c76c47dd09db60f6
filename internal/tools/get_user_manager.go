package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetUserManagerInput defines the input schema for the get_user_manager tool.
type GetUserManagerInput struct {
	UserQuery string `json:"userQuery" jsonschema:"required,Object ID or UPN of the user whose manager to fetch; falls back to a prefix search"`
}

// NewGetUserManagerHandler creates the get_user_manager tool handler.
// Resolves the user first (direct hit, else first search match), then fetches
// that user's manager. The no-manager message names the resolved user's
// display name, not the input query.
func NewGetUserManagerHandler(deps *Dependencies) mcp.ToolHandlerFor[GetUserManagerInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetUserManagerInput) (*mcp.CallToolResult, any, error) {
		resolved, manager, err := deps.Directory.UserManager(ctx, input.UserQuery)
		if err != nil {
			deps.Logger.Error("manager lookup failed", "query", input.UserQuery, "error", err)
			return FailureResult("Error getting user manager", err), nil, nil
		}

		if resolved == nil {
			return TextResult(fmt.Sprintf("User '%s' not found.", input.UserQuery)), nil, nil
		}
		if manager == nil {
			return TextResult(fmt.Sprintf("No manager found for user '%s'.", resolved.DisplayName)), nil, nil
		}

		return JSONResult(manager, "Error getting user manager"), nil, nil
	}
}
