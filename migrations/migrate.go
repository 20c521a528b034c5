// Package migrations embeds the schema of the cols tracker and applies it
// with goose. The server schema targets PostgreSQL; the client keeps its
// session cache in SQLite and has its own migration set.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed client/*.sql
var embedClientMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies every pending server migration to a PostgreSQL database.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateClient applies the client session schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return up(db, embedClientMigrations, "sqlite3", "client")
}

// Status returns the list of embedded server migration files.
func Status() ([]string, error) {
	return fs.Glob(embedMigrations, "*.sql")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
