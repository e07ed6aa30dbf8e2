package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/adapter/memory"
	"github.com/heartmarshall/insight-calendar/internal/adapter/postgres"
	pginsight "github.com/heartmarshall/insight-calendar/internal/adapter/postgres/insight"
	pgnote "github.com/heartmarshall/insight-calendar/internal/adapter/postgres/note"
	"github.com/heartmarshall/insight-calendar/internal/adapter/provider/sample"
	"github.com/heartmarshall/insight-calendar/internal/adapter/sqlite"
	sqliteinsight "github.com/heartmarshall/insight-calendar/internal/adapter/sqlite/insight"
	sqlitenote "github.com/heartmarshall/insight-calendar/internal/adapter/sqlite/note"
	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// InsightStore is the insight repository contract shared by every backend.
type InsightStore interface {
	GetByDate(ctx context.Context, date string) (*domain.Insight, error)
	GetByMonth(ctx context.Context, year, month int) ([]domain.CalendarItem, error)
	Recent(ctx context.Context, limit int) ([]domain.Insight, error)
	Upsert(ctx context.Context, in domain.InsightInput) error
	Ping(ctx context.Context) error
}

// NoteStore is the note repository contract shared by every backend.
type NoteStore interface {
	GetByDate(ctx context.Context, date, userID string) (*domain.Note, error)
	Save(ctx context.Context, in domain.NoteInput) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	DeleteByID(ctx context.Context, id int64) error
}

// TxRunner runs fn inside a store transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the backend selected once at startup.
type Store struct {
	Mode     string
	Insights InsightStore
	Notes    NoteStore
	Tx       TxRunner

	close func()
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore picks the backend from cfg: an empty DSN gives the in-memory
// mock pre-filled with sample insights, otherwise the configured driver is
// opened and, if requested, migrated.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, now func() time.Time) (*Store, error) {
	if cfg.MockMode() {
		logger.Warn("no database DSN configured, using in-memory mock store")
		return &Store{
			Mode:     cfg.Mode(),
			Insights: memory.NewInsightRepo(now, sample.Catalog()),
			Notes:    memory.NewNoteRepo(now),
			Tx:       memory.TxManager{},
		}, nil
	}

	switch strings.ToLower(cfg.Driver) {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, logger)
	default:
		return openPostgres(ctx, cfg, logger)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(applied)))
	}

	return &Store{
		Mode:     cfg.Mode(),
		Insights: pginsight.New(pool),
		Notes:    pgnote.New(pool),
		Tx:       postgres.NewTxManager(pool),
		close:    pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(ctx, sqlitePath(cfg.DSN), logger)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		applied, err := sqlite.Migrate(ctx, db)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(applied)))
	}

	return &Store{
		Mode:     cfg.Mode(),
		Insights: sqliteinsight.New(db),
		Notes:    sqlitenote.New(db),
		Tx:       sqlite.NewTxManager(db),
		close:    func() { db.Close() },
	}, nil
}

// sqlitePath accepts a bare path or a sqlite:// / file: URL.
func sqlitePath(dsn string) string {
	for _, prefix := range []string{"sqlite://", "file:"} {
		if strings.HasPrefix(dsn, prefix) {
			return strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
