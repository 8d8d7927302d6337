// Package migrations holds the embedded schema for the users and reviews
// tables and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed mysql/*.sql postgres/*.sql
var files embed.FS

// dirFor returns the goose dialect and migration directory for a driver name.
func dirFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case "mysql":
		return "mysql", "mysql", nil
	case "pgx":
		return "postgres", "postgres", nil
	}
	return "", "", fmt.Errorf("migrations: unsupported driver %q", driver)
}

// Up applies every pending migration for the given driver.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	dialect, dir, err := dirFor(driver)
	if err != nil {
		return err
	}
	goose.SetBaseFS(files)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}
