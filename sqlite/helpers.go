package sqlite

import (
	"strings"
	"time"

	"github.com/mjarosz/newsprobe"
)

// parseRFC3339 parses a timestamp column stored as RFC3339 text. A value
// that fails to parse means the row was written outside this package, so
// the error is internal rather than a validation failure.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, newsprobe.Errorf(newsprobe.EINTERNAL, "invalid %s timestamp %q", fieldName, value)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses when set. Zero values
// leave the query unbounded.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
