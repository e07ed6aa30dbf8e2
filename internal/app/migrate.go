package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/insight-calendar/internal/adapter/postgres"
	"github.com/heartmarshall/insight-calendar/internal/adapter/sqlite"
	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/internal/service/insight"
	"github.com/heartmarshall/insight-calendar/migrations"
)

// ErrNoDatabase is returned by migration commands run without a DSN.
var ErrNoDatabase = errors.New("no database DSN configured")

// MigrateUp applies pending migrations and returns the versions that ran.
func MigrateUp(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) ([]int64, error) {
	db, driver, closeDB, err := openMigrationDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	return migrations.Up(ctx, db, driver)
}

// MigrationStatus lists every known migration with its applied state.
func MigrationStatus(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) ([]*goose.MigrationStatus, error) {
	db, driver, closeDB, err := openMigrationDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	provider, err := migrations.NewProvider(db, driver)
	if err != nil {
		return nil, err
	}
	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return status, nil
}

func openMigrationDB(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, string, func(), error) {
	if cfg.MockMode() {
		return nil, "", nil, ErrNoDatabase
	}

	if strings.EqualFold(cfg.Driver, config.DriverSQLite) {
		db, err := sqlite.Open(ctx, sqlitePath(cfg.DSN), logger)
		if err != nil {
			return nil, "", nil, err
		}
		return db, config.DriverSQLite, func() { db.Close() }, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, "", nil, err
	}
	db := stdlib.OpenDBFromPool(pool)
	return db, config.DriverPostgres, func() {
		db.Close()
		pool.Close()
	}, nil
}

// ReadImportFile decodes a YAML list of dated insights. The entry layout
// matches the sample catalog with an added date field.
func ReadImportFile(path string) ([]insight.ImportItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var items []insight.ImportItem
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode import file %s: %w", path, err)
	}
	return items, nil
}
