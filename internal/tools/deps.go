// Package tools provides the MCP tool handlers and registration.
package tools

import (
	"context"
	"log/slog"

	"github.com/stackbridge/entrasql/internal/directory"
	"github.com/stackbridge/entrasql/internal/sqldata"
)

// RecordStore is the relational surface the record tools call.
type RecordStore interface {
	Insert(ctx context.Context, table string, values map[string]any) (int64, error)
	Read(ctx context.Context, table, keyColumn, id string) (map[string]any, error)
	Update(ctx context.Context, table, keyColumn, id string, values map[string]any) (int64, error)
	Delete(ctx context.Context, table, keyColumn, id string) (int64, error)
	Count(ctx context.Context, table string) (int64, error)
	ListTables(ctx context.Context) ([]sqldata.TableInfo, error)
	Query(ctx context.Context, query string) ([]map[string]any, error)
}

// Directory is the lookup surface the directory tools call.
type Directory interface {
	LookupUser(ctx context.Context, query string) (*directory.User, []directory.User, error)
	LookupGroup(ctx context.Context, query string) (*directory.Group, []directory.Group, error)
	LookupServicePrincipals(ctx context.Context, query string) ([]directory.ServicePrincipal, error)
	LookupApplications(ctx context.Context, query string) ([]directory.Application, error)
	UserManager(ctx context.Context, query string) (*directory.User, *directory.User, error)
}

var (
	_ RecordStore = (*sqldata.Client)(nil)
	_ Directory   = (*directory.Service)(nil)
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Store     RecordStore
	Directory Directory
	Logger    *slog.Logger
}
