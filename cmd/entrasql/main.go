// Package main provides the entry point for the entrasql MCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackbridge/entrasql/internal/config"
	"github.com/stackbridge/entrasql/internal/directory"
	"github.com/stackbridge/entrasql/internal/identity"
	"github.com/stackbridge/entrasql/internal/server"
	"github.com/stackbridge/entrasql/internal/sqldata"
	"github.com/stackbridge/entrasql/internal/tools"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		connString string
		logFile    string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "entrasql",
		Short: "MCP server exposing Azure SQL CRUD and Entra ID directory tools",
		Long: `Entrasql is an MCP stdio server with two tool groups: CRUD operations
against one Azure SQL database (token-authenticated, one connection per call)
and directory lookups against Microsoft Entra ID via Microsoft Graph.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if connString != "" {
				cfg.ConnectionString = connString
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			if logLevel != "" {
				cfg.LogLevel = config.ParseLogLevel(logLevel)
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&connString, "connection-string", "", "Azure SQL connection string (overrides SQL_CONNECTION_STRING)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "log file path (overrides ENTRASQL_LOG_FILE)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR (overrides ENTRASQL_LOG_LEVEL)")

	return cmd
}

func run(cfg config.Config) error {
	// Dual output: text on stderr, JSON to file. Stdout belongs to the transport.
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()

	logger.Info("entrasql starting", "version", version)
	if cfg.ConnectionString == "" {
		logger.Warn("no SQL connection string configured; relational tools will fail per call")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// One credential chain for both backends; built lazily on first use.
	chain := identity.NewChain()
	store := sqldata.NewClient(cfg.ConnectionString, chain.Scoped(cfg.SQLTokenScope), logger)
	dir := directory.NewService(directory.NewGraphClient(chain, cfg.GraphScope), logger)

	srv := server.New(version, logger)
	deps := &tools.Dependencies{
		Store:     store,
		Directory: dir,
		Logger:    logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)
	logger.Info("tools registered", "count", 12)

	logger.Info("server ready, awaiting connections")
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
