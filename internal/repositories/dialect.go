package repositories

import (
	"strconv"
	"strings"
)

type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "pgx"
)

// ParseDialect maps a database/sql driver name onto a Dialect.
func ParseDialect(driver string) (Dialect, bool) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "mysql", "mariadb":
		return DialectMySQL, true
	case "pgx", "postgres", "postgresql":
		return DialectPostgres, true
	}
	return "", false
}

// Rebind rewrites ? placeholders to $1..$n for Postgres.
// Queries in this package never contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
