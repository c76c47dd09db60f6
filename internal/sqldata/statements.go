package sqldata

import (
	"fmt"
	"sort"
	"strings"
)

// listTablesQuery returns all base tables ordered by schema then name.
const listTablesQuery = `SELECT TABLE_SCHEMA, TABLE_NAME, TABLE_TYPE
FROM INFORMATION_SCHEMA.TABLES
WHERE TABLE_TYPE = 'BASE TABLE'
ORDER BY TABLE_SCHEMA, TABLE_NAME`

// quoteIdent bracket-quotes a single T-SQL identifier, doubling any closing
// bracket. Caller-supplied table and column names pass through otherwise
// unvalidated, so quoting is the one guard against identifier injection.
func quoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// quoteTable quotes a possibly schema-qualified table name part by part,
// so "dbo.Users" becomes "[dbo].[Users]".
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = quoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// sortedColumns returns the column names of a value map in a stable order,
// so parameter positions are deterministic.
func sortedColumns(values map[string]any) []string {
	cols := make([]string, 0, len(values))
	for c := range values {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// insertStatement builds an INSERT with one @pN placeholder per column,
// followed by a SCOPE_IDENTITY() select for the generated key.
func insertStatement(table string, cols []string) string {
	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
		params[i] = fmt.Sprintf("@p%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s); SELECT CAST(SCOPE_IDENTITY() AS BIGINT)",
		quoteTable(table), strings.Join(quoted, ", "), strings.Join(params, ", "),
	)
}

// readStatement builds a single-row lookup by key column.
func readStatement(table, keyColumn string) string {
	return fmt.Sprintf("SELECT * FROM %s WHERE %s = @p1", quoteTable(table), quoteIdent(keyColumn))
}

// updateStatement builds an UPDATE with one placeholder per column; the key
// value binds to the placeholder after the last column.
func updateStatement(table, keyColumn string, cols []string) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = @p%d", quoteIdent(c), i+1)
	}
	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = @p%d",
		quoteTable(table), strings.Join(sets, ", "), quoteIdent(keyColumn), len(cols)+1,
	)
}

// deleteStatement builds a DELETE by key column.
func deleteStatement(table, keyColumn string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = @p1", quoteTable(table), quoteIdent(keyColumn))
}

// countStatement builds a COUNT(*) over one table.
func countStatement(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTable(table))
}
