package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/internal/transport/middleware"
	"github.com/heartmarshall/insight-calendar/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)
	warnUnguarded(logger, cfg)

	shutdownTracing, err := InitTracing(ctx, logger, cfg.Tracing, cfg.App.Env)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      otelhttp.NewHandler(NewHandler(c, limiter), "http.server"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// warnUnguarded flags settings that leave the scheduler and admin routes
// open or broken. APP_ENV defaults to development.
func warnUnguarded(logger *slog.Logger, cfg *config.Config) {
	switch {
	case cfg.App.IsDevelopment():
		logger.Warn("development mode: cron auth is skipped and preview and seed are open; set APP_ENV=production to enforce them",
			slog.String("env", cfg.App.Env),
			slog.Bool("cron_secret_set", cfg.Cron.Secret != ""),
		)
	case cfg.Cron.Secret == "":
		logger.Warn("CRON_SECRET is not set; scheduled generation will be rejected with 500")
	}
}

// NewHandler builds the full HTTP handler: routes, per-route guards and the
// cross-cutting middleware chain.
func NewHandler(c *Container, limiter *middleware.RateLimiter) http.Handler {
	cfg := c.Config
	dev := cfg.App.IsDevelopment()

	env := rest.EnvCheck{
		HasLLMKey: strings.TrimSpace(cfg.LLM.APIKey) != "",
		HasDBDSN:  !cfg.Database.MockMode(),
	}

	mux := rest.NewRouter(rest.Handlers{
		Insights: rest.NewInsightHandler(c.Insights, c.Log, env, cfg.Generation.Timeout),
		Notes:    rest.NewNoteHandler(c.Notes, c.Log),
		Health: rest.NewHealthHandler(c.Store.Insights, rest.HealthInfo{
			Store:   c.Store.Mode,
			Model:   c.ModelMode,
			Version: BuildVersion(),
		}, c.Now),
	}, rest.Guards{
		Cron: middleware.CronAuth(cfg.Cron.Secret, dev, c.Log),
		Preview: middleware.Allow(dev, http.StatusMethodNotAllowed,
			"This endpoint is not available in production. Use POST with proper authorization."),
		Seed:          middleware.Allow(cfg.App.SeedAllowed(), http.StatusForbidden, "This endpoint is not available in production"),
		GenerateLimit: limiter.Limit("generate", cfg.RateLimit.GeneratePerMinute),
		SeedLimit:     limiter.Limit("seed", cfg.RateLimit.SeedPerMinute),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.UserID,
		middleware.Logger(c.Log),
		middleware.Recovery(c.Log),
		middleware.CORS(cfg.CORS),
	)(mux)
}
