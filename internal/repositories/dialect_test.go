package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"bankingBack/internal/models"
)

func TestParseDialect(t *testing.T) {
	cases := map[string]Dialect{
		"mysql":      DialectMySQL,
		"MariaDB":    DialectMySQL,
		"pgx":        DialectPostgres,
		" postgres ": DialectPostgres,
		"postgresql": DialectPostgres,
	}
	for in, want := range cases {
		got, ok := ParseDialect(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseDialect("sqlite3")
	assert.False(t, ok)
}

func TestRebind(t *testing.T) {
	query := `SELECT a FROM t WHERE x = ? AND y = ?`

	t.Run("mysql keeps placeholders", func(t *testing.T) {
		assert.Equal(t, query, DialectMySQL.Rebind(query))
	})

	t.Run("postgres numbers placeholders", func(t *testing.T) {
		assert.Equal(t, `SELECT a FROM t WHERE x = $1 AND y = $2`, DialectPostgres.Rebind(query))
	})
}

func TestIsForeignKeyConstraintError(t *testing.T) {
	t.Run("mysql 1452", func(t *testing.T) {
		err := fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1452, Message: "fk"})
		assert.True(t, isForeignKeyConstraintError(err))
	})

	t.Run("mysql duplicate is not fk", func(t *testing.T) {
		assert.False(t, isForeignKeyConstraintError(&mysql.MySQLError{Number: 1062}))
	})

	t.Run("postgres 23503", func(t *testing.T) {
		assert.True(t, isForeignKeyConstraintError(&pgconn.PgError{Code: "23503"}))
	})

	t.Run("generic error", func(t *testing.T) {
		assert.False(t, isForeignKeyConstraintError(errors.New("boom")))
	})
}

func TestWrapInsertError(t *testing.T) {
	err := wrapInsertError(&pgconn.PgError{Code: "23503"})
	assert.True(t, errors.Is(err, models.ErrUserNotFound))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, wrapInsertError(plain))
}
