package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookupServicePrincipalInput defines the input schema for the
// lookup_service_principal tool.
type LookupServicePrincipalInput struct {
	Query string `json:"query" jsonschema:"required,Application (client) ID or display name prefix"`
}

// NewLookupServicePrincipalHandler creates the lookup_service_principal tool
// handler. Always a filtered search, never a direct-by-key fetch.
func NewLookupServicePrincipalHandler(deps *Dependencies) mcp.ToolHandlerFor[LookupServicePrincipalInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LookupServicePrincipalInput) (*mcp.CallToolResult, any, error) {
		sps, err := deps.Directory.LookupServicePrincipals(ctx, input.Query)
		if err != nil {
			deps.Logger.Error("service principal lookup failed", "query", input.Query, "error", err)
			return FailureResult("Error looking up service principal", err), nil, nil
		}

		return JSONResult(sps, "Error looking up service principal"), nil, nil
	}
}
