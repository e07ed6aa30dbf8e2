package insight

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// DailyStatus is the outcome of one daily run.
type DailyStatus string

const (
	StatusCreated DailyStatus = "created"
	StatusSkipped DailyStatus = "skipped"
	StatusFailed  DailyStatus = "failed"
)

// DailyResult reports what RunDaily did. Insight is set only when Created;
// Err only when Failed.
type DailyResult struct {
	Date     string
	Status   DailyStatus
	Insight  *domain.GeneratedInsight
	Duration time.Duration
	Err      error
}

// RunDaily creates today's (KST) insight unless one already exists.
// Nothing is written when generation fails.
func (s *Service) RunDaily(ctx context.Context) DailyResult {
	start := time.Now()
	date := s.Today()

	res := s.runDaily(ctx, date)
	res.Date = date
	res.Duration = time.Since(start)

	attrs := []any{
		slog.String("date", date),
		slog.String("status", string(res.Status)),
		slog.Duration("duration", res.Duration),
	}
	if res.Err != nil {
		s.log.ErrorContext(ctx, "daily insight failed", append(attrs, slog.String("error", res.Err.Error()))...)
	} else {
		s.log.InfoContext(ctx, "daily insight", attrs...)
	}
	return res
}

func (s *Service) runDaily(ctx context.Context, date string) DailyResult {
	_, err := s.insights.GetByDate(ctx, date)
	switch {
	case err == nil:
		return DailyResult{Status: StatusSkipped}
	case !errors.Is(err, domain.ErrNotFound):
		return DailyResult{Status: StatusFailed, Err: err}
	}

	generated, err := s.gen.GenerateWithRetry(ctx, date, s.opts.MaxAttempts)
	if err != nil {
		return DailyResult{Status: StatusFailed, Err: err}
	}

	if err := s.insights.Upsert(ctx, domain.InsightInput{Date: date, GeneratedInsight: generated}); err != nil {
		return DailyResult{Status: StatusFailed, Err: err}
	}

	return DailyResult{Status: StatusCreated, Insight: &generated}
}

// Preview generates today's insight without storing it.
func (s *Service) Preview(ctx context.Context) (string, domain.GeneratedInsight, error) {
	date := s.Today()
	generated, err := s.gen.GenerateWithRetry(ctx, date, s.opts.PreviewMaxAttempts)
	if err != nil {
		s.log.WarnContext(ctx, "preview generation failed", slog.String("date", date), slog.String("error", err.Error()))
		return date, domain.GeneratedInsight{}, err
	}
	return date, generated, nil
}
