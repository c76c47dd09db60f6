package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// Called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Relational tool group
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_record",
		Description: "Insert a record into a table from a JSON object of column values, returning the generated ID",
	}, NewCreateRecordHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_record",
		Description: "Read one record by key column and return it as JSON",
	}, NewReadRecordHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_record",
		Description: "Update a record's columns from a JSON object, matched by key column",
	}, NewUpdateRecordHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_record",
		Description: "Delete a record matched by key column",
	}, NewDeleteRecordHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_records",
		Description: "Count the rows in a table",
	}, NewCountRecordsHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tables",
		Description: "List all base tables ordered by schema and name",
	}, NewListTablesHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_query",
		Description: "Execute a SQL SELECT statement verbatim and return all rows as JSON",
	}, NewExecuteQueryHandler(deps))

	// Directory tool group
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_user",
		Description: "Look up an Entra ID user by object ID or UPN, falling back to a name/mail prefix search",
	}, NewLookupUserHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_group",
		Description: "Look up an Entra ID group by object ID, falling back to a name/mail prefix search",
	}, NewLookupGroupHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_service_principal",
		Description: "Search Entra ID service principals by app ID or display name prefix",
	}, NewLookupServicePrincipalHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_application",
		Description: "Search Entra ID application registrations by app ID or display name prefix",
	}, NewLookupApplicationHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_manager",
		Description: "Resolve an Entra ID user and return their manager",
	}, NewGetUserManagerHandler(deps))
}
