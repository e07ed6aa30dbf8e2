package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/internal/service/generation"
	"github.com/heartmarshall/insight-calendar/internal/service/insight"
	"github.com/heartmarshall/insight-calendar/internal/service/note"
)

// Container holds the wired services shared by the HTTP server and the CLI.
type Container struct {
	Config    *config.Config
	Log       *slog.Logger
	Store     *Store
	ModelMode string
	Insights  *insight.Service
	Notes     *note.Service

	// Now is the clock the services were built with.
	Now func() time.Time
}

// NewContainer opens the store, selects the model and builds the services.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	return newContainer(ctx, cfg, logger, time.Now)
}

func newContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, now func() time.Time) (*Container, error) {
	store, err := OpenStore(ctx, cfg.Database, logger, now)
	if err != nil {
		return nil, err
	}

	model, mode, err := NewTextModel(ctx, logger, cfg.LLM)
	if err != nil {
		store.Close()
		return nil, err
	}

	gen := generation.NewClient(logger, model, cfg.Generation.BackoffStep)

	insights := insight.NewService(logger, store.Insights, gen, store.Tx, insight.Options{
		MaxAttempts:        cfg.Generation.MaxAttempts,
		PreviewMaxAttempts: cfg.Generation.PreviewMaxAttempts,
		SeedConcurrency:    cfg.Generation.SeedConcurrency,
	}, now)

	logger.Info("services ready",
		slog.String("store", store.Mode),
		slog.String("model", mode),
	)

	return &Container{
		Config:    cfg,
		Log:       logger,
		Store:     store,
		ModelMode: mode,
		Insights:  insights,
		Notes:     note.NewService(logger, store.Notes),
		Now:       now,
	}, nil
}

// Close releases the store.
func (c *Container) Close() {
	c.Store.Close()
}
