//go:build e2e

package e2e_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/insight-calendar/internal/adapter/postgres"
	pginsight "github.com/heartmarshall/insight-calendar/internal/adapter/postgres/insight"
	pgnote "github.com/heartmarshall/insight-calendar/internal/adapter/postgres/note"
	"github.com/heartmarshall/insight-calendar/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/insight-calendar/internal/adapter/provider/sample"
	"github.com/heartmarshall/insight-calendar/internal/app"
	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/internal/domain"
	"github.com/heartmarshall/insight-calendar/internal/service/generation"
	"github.com/heartmarshall/insight-calendar/internal/service/insight"
	"github.com/heartmarshall/insight-calendar/internal/service/note"
	"github.com/heartmarshall/insight-calendar/internal/transport/middleware"
)

const cronSecret = "e2e-cron-secret"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	// Today is the KST date the server clock reports.
	Today string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOption func(*config.Config)

func withAllowSeed(c *config.Config) { c.App.AllowSeed = true }

func withGenerateLimit(n int) serverOption {
	return func(c *config.Config) { c.RateLimit.GeneratePerMinute = n }
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the production handler backed by a real
// PostgreSQL container (shared via testhelper). The clock is pinned to a
// random date inside the range the month view accepts, so tests sharing the
// container stay independent.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	today := uniqueToday()
	day, err := time.Parse(domain.DateLayout, today)
	require.NoError(t, err)
	// 00:30 UTC is 09:30 KST on the same calendar day.
	now := func() time.Time { return day.Add(30 * time.Minute) }

	cfg := &config.Config{
		App:  config.AppConfig{Env: config.EnvProduction},
		Cron: config.CronConfig{Secret: cronSecret},
		Database: config.DatabaseConfig{
			DSN:    "postgres://e2e",
			Driver: config.DriverPostgres,
		},
		Generation: config.GenerationConfig{
			MaxAttempts:        3,
			PreviewMaxAttempts: 2,
			Timeout:            30 * time.Second,
			SeedConcurrency:    4,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS"},
		RateLimit: config.RateLimitConfig{GeneratePerMinute: 100, SeedPerMinute: 100},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	insights := pginsight.New(pool)
	notes := pgnote.New(pool)
	txm := postgres.NewTxManager(pool)
	gen := generation.NewClient(logger, sample.NewModel(logger), time.Millisecond)

	c := &app.Container{
		Config: cfg,
		Log:    logger,
		Store: &app.Store{
			Mode:     config.DriverPostgres,
			Insights: insights,
			Notes:    notes,
			Tx:       txm,
		},
		ModelMode: app.ModelSample,
		Insights: insight.NewService(logger, insights, gen, txm, insight.Options{
			MaxAttempts:        cfg.Generation.MaxAttempts,
			PreviewMaxAttempts: cfg.Generation.PreviewMaxAttempts,
			SeedConcurrency:    cfg.Generation.SeedConcurrency,
		}, now),
		Notes: note.NewService(logger, notes),
		Now:   now,
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(c, limiter))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Today:  today,
	}
}

// ---------------------------------------------------------------------------
// do sends a request and returns status + decoded JSON body (nil when empty).
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return resp.StatusCode, result
}

func cronAuth() map[string]string {
	return map[string]string{"Authorization": "Bearer " + cronSecret}
}

func asUser(id string) map[string]string {
	return map[string]string{middleware.UserIDHeader: id}
}

// uniqueToday picks a date the month endpoint accepts. Repository tests use
// testhelper.UniqueDate, which lies beyond that range.
func uniqueToday() string {
	return fmt.Sprintf("%04d-%02d-%02d", 2030+rand.IntN(70), 1+rand.IntN(12), 1+rand.IntN(28))
}

// uniqueUser returns a user id no other test uses.
func uniqueUser(t *testing.T) string {
	return fmt.Sprintf("anon-%s-%d", t.Name(), time.Now().UnixNano())
}
