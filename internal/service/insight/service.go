// Package insight orchestrates reading, generating, seeding and importing
// daily insights on top of an insight repository and a generator.
package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

type insightRepo interface {
	GetByDate(ctx context.Context, date string) (*domain.Insight, error)
	GetByMonth(ctx context.Context, year, month int) ([]domain.CalendarItem, error)
	Recent(ctx context.Context, limit int) ([]domain.Insight, error)
	Upsert(ctx context.Context, in domain.InsightInput) error
}

type generator interface {
	GenerateWithRetry(ctx context.Context, date string, maxAttempts int) (domain.GeneratedInsight, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes generation and seeding.
type Options struct {
	MaxAttempts        int
	PreviewMaxAttempts int
	SeedConcurrency    int
}

// Service provides insight operations.
type Service struct {
	insights insightRepo
	gen      generator
	tx       txManager
	opts     Options
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new insight service. now supplies the wall clock
// used to derive "today" in KST.
func NewService(
	log *slog.Logger,
	insights insightRepo,
	gen generator,
	tx txManager,
	opts Options,
	now func() time.Time,
) *Service {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 3
	}
	if opts.PreviewMaxAttempts < 1 {
		opts.PreviewMaxAttempts = 2
	}
	if opts.SeedConcurrency < 1 {
		opts.SeedConcurrency = 1
	}
	return &Service{
		insights: insights,
		gen:      gen,
		tx:       tx,
		opts:     opts,
		now:      now,
		log:      log.With("service", "insight"),
	}
}

// Today returns the current KST date.
func (s *Service) Today() string {
	return domain.Today(s.now())
}
