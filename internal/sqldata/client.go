// Package sqldata executes CRUD operations against Azure SQL with per-call
// token authentication. Every operation acquires a fresh access token from
// the credential chain, opens its own connection and closes it on every exit
// path; nothing is pooled across calls.
package sqldata

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	mssql "github.com/microsoft/go-mssqldb"

	"github.com/stackbridge/entrasql/internal/identity"
)

// TableInfo describes one base table from the information schema.
type TableInfo struct {
	Schema    string `json:"schema"`
	TableName string `json:"tableName"`
	TableType string `json:"tableType"`
}

// OpenFunc opens a database handle for a single operation.
// Injected so tests can substitute an in-memory mock.
type OpenFunc func(ctx context.Context) (*sql.DB, error)

// Client runs CRUD statements against one configured database.
type Client struct {
	open   OpenFunc
	logger *slog.Logger
}

// NewClient builds a client that authenticates each call with a token from
// the given source, scoped to the database resource.
func NewClient(connString string, tokens identity.TokenSource, logger *slog.Logger) *Client {
	return NewClientWithOpener(tokenOpener(connString, tokens), logger)
}

// NewClientWithOpener builds a client with a custom connection opener.
func NewClientWithOpener(open OpenFunc, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{open: open, logger: logger}
}

// tokenOpener returns an OpenFunc that fetches a token and builds a
// token-authenticated connector per call.
func tokenOpener(connString string, tokens identity.TokenSource) OpenFunc {
	return func(ctx context.Context) (*sql.DB, error) {
		tok, err := tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		connector, err := mssql.NewAccessTokenConnector(connString, func() (string, error) {
			return tok, nil
		})
		if err != nil {
			return nil, fmt.Errorf("build connector: %w", err)
		}
		return sql.OpenDB(connector), nil
	}
}

// withConn opens a connection for one operation and closes it unconditionally.
func (c *Client) withConn(ctx context.Context, fn func(*sql.DB) error) error {
	db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// Insert adds one row and returns the generated identity value
// (zero when the table has no identity column).
func (c *Client) Insert(ctx context.Context, table string, values map[string]any) (int64, error) {
	cols := sortedColumns(values)
	args := make([]any, len(cols))
	for i, col := range cols {
		args[i] = values[col]
	}

	var id sql.NullInt64
	err := c.withConn(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx, insertStatement(table, cols), args...).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	c.logger.Debug("row inserted", "table", table, "columns", len(cols), "id", id.Int64)
	return id.Int64, nil
}

// Read fetches the first row matching keyColumn = id.
// Returns ErrNotFound when no row matches.
func (c *Client) Read(ctx context.Context, table, keyColumn, id string) (map[string]any, error) {
	var row map[string]any
	err := c.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, readStatement(table, keyColumn), id)
		if err != nil {
			return err
		}
		defer rows.Close()

		maps, err := scanRowMaps(rows)
		if err != nil {
			return err
		}
		if len(maps) == 0 {
			return ErrNotFound
		}
		row = maps[0]
		return nil
	})
	return row, err
}

// Update sets the given columns on rows matching keyColumn = id and
// returns the number of affected rows.
func (c *Client) Update(ctx context.Context, table, keyColumn, id string, values map[string]any) (int64, error) {
	cols := sortedColumns(values)
	args := make([]any, 0, len(cols)+1)
	for _, col := range cols {
		args = append(args, values[col])
	}
	args = append(args, id)

	var affected int64
	err := c.withConn(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, updateStatement(table, keyColumn, cols), args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// Delete removes rows matching keyColumn = id and returns the affected count.
func (c *Client) Delete(ctx context.Context, table, keyColumn, id string) (int64, error) {
	var affected int64
	err := c.withConn(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, deleteStatement(table, keyColumn), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// Count returns the row count of one (optionally schema-qualified) table.
func (c *Client) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	err := c.withConn(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx, countStatement(table)).Scan(&n)
	})
	return n, err
}

// ListTables returns all base tables ordered by schema then name.
func (c *Client) ListTables(ctx context.Context) ([]TableInfo, error) {
	tables := []TableInfo{}
	err := c.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, listTablesQuery)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var t TableInfo
			if err := rows.Scan(&t.Schema, &t.TableName, &t.TableType); err != nil {
				return err
			}
			tables = append(tables, t)
		}
		return rows.Err()
	})
	return tables, err
}

// Query executes caller-supplied SQL verbatim and returns every row as a
// column→value map with NULLs preserved.
func (c *Client) Query(ctx context.Context, query string) ([]map[string]any, error) {
	var result []map[string]any
	err := c.withConn(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		result, err = scanRowMaps(rows)
		return err
	})
	return result, err
}
