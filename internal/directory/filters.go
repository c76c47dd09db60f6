package directory

import (
	"fmt"
	"strings"
)

// escapeLiteral doubles single quotes for safe embedding in OData filters.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// userSearchFilter matches users by display name, UPN or mail prefix.
func userSearchFilter(query string) string {
	q := escapeLiteral(query)
	return fmt.Sprintf(
		"startswith(displayName,'%s') or startswith(userPrincipalName,'%s') or startswith(mail,'%s')",
		q, q, q,
	)
}

// groupSearchFilter matches groups by display name or mail prefix.
func groupSearchFilter(query string) string {
	q := escapeLiteral(query)
	return fmt.Sprintf("startswith(displayName,'%s') or startswith(mail,'%s')", q, q)
}

// appSearchFilter matches service principals and app registrations by exact
// appId or display name prefix.
func appSearchFilter(query string) string {
	q := escapeLiteral(query)
	return fmt.Sprintf("appId eq '%s' or startswith(displayName,'%s')", q, q)
}
