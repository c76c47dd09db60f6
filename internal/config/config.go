// Package config loads configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Default token scopes for the two backends.
const (
	DefaultSQLTokenScope = "https://database.windows.net/.default"
	DefaultGraphScope    = "https://graph.microsoft.com/.default"
)

// Config holds all configuration values.
type Config struct {
	// Azure SQL connection string ("sqlserver://..." or ADO-style).
	// Empty is tolerated: relational tools will fail per call and report
	// through their textual error channel.
	ConnectionString string

	// Token scopes
	SQLTokenScope string
	GraphScope    string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		ConnectionString: getEnv("SQL_CONNECTION_STRING", ""),

		SQLTokenScope: getEnv("ENTRASQL_SQL_TOKEN_SCOPE", DefaultSQLTokenScope),
		GraphScope:    getEnv("ENTRASQL_GRAPH_SCOPE", DefaultGraphScope),

		LogFile:  getEnv("ENTRASQL_LOG_FILE", "/tmp/entrasql.log"),
		LogLevel: ParseLogLevel(getEnv("ENTRASQL_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// ParseLogLevel maps a level name to a slog level, defaulting to INFO.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
