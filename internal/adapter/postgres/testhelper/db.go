// Package testhelper runs one disposable PostgreSQL container per test
// binary and hands out pools on the migrated schema.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/insight-calendar/internal/adapter/postgres"
	"github.com/heartmarshall/insight-calendar/internal/config"
)

const defaultImage = "postgres:17-alpine"

var (
	startOnce sync.Once
	sharedDSN string
	startErr  error
)

// DSN returns the connection string of the shared, migrated container.
// Tests that call it are skipped under -short. Set TEST_POSTGRES_IMAGE to
// try another server version.
func DSN(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}

	startOnce.Do(func() {
		sharedDSN, startErr = startAndMigrate()
	})
	if startErr != nil {
		t.Fatalf("testhelper: postgres container: %v", startErr)
	}
	return sharedDSN
}

// DatabaseConfig is the store configuration pointing at the shared container.
func DatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return poolConfig(DSN(t))
}

func poolConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:             dsn,
		Driver:          config.DriverPostgres,
		MaxConns:        4,
		MinConns:        0,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}
}

// SetupTestDB returns a fresh pool on the shared container, built with the
// same postgres.NewPool the server uses. The pool is closed via t.Cleanup;
// the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, DatabaseConfig(t))
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func startAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	image := os.Getenv("TEST_POSTGRES_IMAGE")
	if image == "" {
		image = defaultImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "insights",
				"POSTGRES_PASSWORD": "insights",
				"POSTGRES_DB":       "insights_test",
				"TZ":                "UTC",
			},
			// The server restarts once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://insights:insights@%s/insights_test?sslmode=disable", endpoint)

	pool, err := postgres.NewPool(ctx, poolConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}
