package insight

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/insight-calendar/internal/adapter/provider/sample"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// SeedStatus is the per-date outcome of seeding.
type SeedStatus string

const (
	SeedCreated SeedStatus = "created"
	SeedExists  SeedStatus = "exists"
	SeedError   SeedStatus = "error"
)

// SeedResult is the outcome for one date.
type SeedResult struct {
	Date    string     `json:"date"`
	Status  SeedStatus `json:"status"`
	Message string     `json:"message,omitempty"`
}

// SeedSummary counts results by status.
type SeedSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Exists  int `json:"exists"`
	Errors  int `json:"errors"`
}

// SeedReport lists results in the order the dates were requested.
type SeedReport struct {
	Summary SeedSummary
	Results []SeedResult
}

type seedJob struct {
	date   string
	sample domain.GeneratedInsight
}

// Seed fills missing dates with catalog samples. Existing insights are left
// untouched. A failure on one date does not stop the others.
func (s *Service) Seed(ctx context.Context, in SeedInput) (SeedReport, error) {
	if err := in.Validate(); err != nil {
		return SeedReport{}, err
	}

	var jobs []seedJob
	if in.Date != "" {
		jobs = []seedJob{{date: in.Date, sample: sample.Pick(in.Date)}}
	} else {
		now := s.now()
		jobs = make([]seedJob, in.Days)
		for i := range jobs {
			jobs[i] = seedJob{date: domain.DaysBefore(now, i), sample: sample.At(i)}
		}
	}

	results := make([]SeedResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.SeedConcurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.seedOne(gctx, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SeedReport{}, err
	}

	report := SeedReport{Results: results, Summary: SeedSummary{Total: len(results)}}
	for _, r := range results {
		switch r.Status {
		case SeedCreated:
			report.Summary.Created++
		case SeedExists:
			report.Summary.Exists++
		case SeedError:
			report.Summary.Errors++
		}
	}

	s.log.InfoContext(ctx, "seed finished",
		slog.Int("total", report.Summary.Total),
		slog.Int("created", report.Summary.Created),
		slog.Int("exists", report.Summary.Exists),
		slog.Int("errors", report.Summary.Errors),
	)
	return report, nil
}

func (s *Service) seedOne(ctx context.Context, job seedJob) SeedResult {
	_, err := s.insights.GetByDate(ctx, job.date)
	switch {
	case err == nil:
		return SeedResult{Date: job.date, Status: SeedExists, Message: "Insight already exists"}
	case !errors.Is(err, domain.ErrNotFound):
		return SeedResult{Date: job.date, Status: SeedError, Message: err.Error()}
	}

	if err := s.insights.Upsert(ctx, domain.InsightInput{Date: job.date, GeneratedInsight: job.sample}); err != nil {
		s.log.WarnContext(ctx, "seed date failed", slog.String("date", job.date), slog.String("error", err.Error()))
		return SeedResult{Date: job.date, Status: SeedError, Message: err.Error()}
	}
	return SeedResult{Date: job.date, Status: SeedCreated}
}
