package pgsql

import (
	"fmt"
	"strings"
)

// whereBuilder assembles a WHERE clause from optional predicates with positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends a predicate. clause must contain exactly one %d, replaced by the argument position.
func (b *whereBuilder) add(clause string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(clause, len(b.args)))
}

func (b *whereBuilder) sql() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// escapeLike escapes the LIKE wildcards of s so it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
