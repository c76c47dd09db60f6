//go:build integration

package sqldata_test

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stackbridge/entrasql/internal/sqldata"
)

const saPassword = "Str0ng!Passw0rd"

// startSQLServer runs a disposable SQL Server and returns an opener that
// connects with SQL auth (token auth needs a real Azure endpoint).
func startSQLServer(t *testing.T) sqldata.OpenFunc {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mcr.microsoft.com/mssql/server:2022-latest",
		ExposedPorts: []string{"1433/tcp"},
		Env: map[string]string{
			"ACCEPT_EULA":       "Y",
			"MSSQL_SA_PASSWORD": saPassword,
		},
		WaitingFor: wait.ForLog("SQL Server is now ready for client connections").
			WithStartupTimeout(3 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "1433")
	require.NoError(t, err)

	dsn := fmt.Sprintf("sqlserver://sa:%s@%s:%s", saPassword, host, port.Port())
	return func(ctx context.Context) (*sql.DB, error) {
		return sql.Open("sqlserver", dsn)
	}
}

func TestCRUDRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	open := startSQLServer(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := sqldata.NewClientWithOpener(open, logger)
	ctx := context.Background()

	_, err := client.Query(ctx, `CREATE TABLE People (
		Id INT IDENTITY(1,1) PRIMARY KEY,
		Name NVARCHAR(100) NOT NULL,
		Nickname NVARCHAR(100) NULL
	)`)
	require.NoError(t, err)

	id, err := client.Insert(ctx, "People", map[string]any{"Name": "Ada", "Nickname": nil})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	row, err := client.Read(ctx, "People", "Id", "1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", row["Name"])
	v, ok := row["Nickname"]
	assert.True(t, ok)
	assert.Nil(t, v)

	affected, err := client.Update(ctx, "People", "Id", "1", map[string]any{"Nickname": "Countess"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	n, err := client.Count(ctx, "dbo.People")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	tables, err := client.ListTables(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	assert.Equal(t, "People", tables[0].TableName)
	assert.Equal(t, "dbo", tables[0].Schema)

	affected, err = client.Delete(ctx, "People", "Id", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = client.Read(ctx, "People", "Id", "1")
	assert.ErrorIs(t, err, sqldata.ErrNotFound)
}
