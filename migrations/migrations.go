// Package migrations embeds the goose SQL migrations for every supported
// store driver and applies them through a goose.Provider.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed sqlite/*.sql
var sqliteFS embed.FS

// NewProvider returns a goose provider for the given driver ("postgres" or "sqlite").
// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
func NewProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	dialect, fsys, err := source(driver)
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Up applies all pending migrations and returns the versions that ran.
func Up(ctx context.Context, db *sql.DB, driver string) ([]int64, error) {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	versions := make([]int64, 0, len(results))
	for _, r := range results {
		versions = append(versions, r.Source.Version)
	}
	return versions, nil
}

func source(driver string) (goose.Dialect, fs.FS, error) {
	switch driver {
	case "postgres":
		sub, err := fs.Sub(postgresFS, "postgres")
		return goose.DialectPostgres, sub, err
	case "sqlite":
		sub, err := fs.Sub(sqliteFS, "sqlite")
		return goose.DialectSQLite3, sub, err
	default:
		return "", nil, fmt.Errorf("migrations: unsupported driver %q", driver)
	}
}
