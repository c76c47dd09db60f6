//go:build integration

package tools_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbridge/entrasql/internal/sqldata"
	"github.com/stackbridge/entrasql/internal/tools"
)

func TestToolRegistration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	impl := &mcp.Implementation{
		Name:    "test-entrasql",
		Version: "0.0.1-test",
	}
	server := mcp.NewServer(impl, nil)

	deps := &tools.Dependencies{
		Store:     &fakeStore{readErr: sqldata.ErrNotFound},
		Directory: &fakeDirectory{},
		Logger:    logger,
	}
	tools.RegisterAll(server, deps)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run(ctx, serverTransport)
	}()

	time.Sleep(50 * time.Millisecond)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err, "client should connect successfully")
	defer session.Close()

	t.Run("tools/list returns all twelve tools", func(t *testing.T) {
		result, err := session.ListTools(ctx, nil)
		require.NoError(t, err)
		require.Len(t, result.Tools, 12)

		toolNames := make([]string, len(result.Tools))
		for i, tool := range result.Tools {
			toolNames[i] = tool.Name
		}
		for _, name := range []string{
			"create_record", "read_record", "update_record", "delete_record",
			"count_records", "list_tables", "execute_query",
			"lookup_user", "lookup_group", "lookup_service_principal",
			"lookup_application", "get_user_manager",
		} {
			assert.Contains(t, toolNames, name)
		}
	})

	t.Run("read_record round-trips through a session", func(t *testing.T) {
		params := &mcp.CallToolParams{
			Name: "read_record",
			Arguments: map[string]any{
				"table":     "Users",
				"keyColumn": "Id",
				"id":        "404",
			},
		}
		result, err := session.CallTool(ctx, params)
		require.NoError(t, err)
		require.Len(t, result.Content, 1)

		textContent, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok, "content should be TextContent")
		assert.Equal(t, "Record not found.", textContent.Text)
		assert.False(t, result.IsError)
	})

	t.Run("get_user_manager round-trips through a session", func(t *testing.T) {
		params := &mcp.CallToolParams{
			Name:      "get_user_manager",
			Arguments: map[string]any{"userQuery": "nobody"},
		}
		result, err := session.CallTool(ctx, params)
		require.NoError(t, err)

		textContent, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "User 'nobody' not found.", textContent.Text)
	})

	cancel()

	select {
	case err := <-serverErr:
		if err != nil {
			t.Logf("server stopped with: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("server did not stop within timeout")
	}
}
