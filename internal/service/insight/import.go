package insight

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// Import validates every item, then upserts them all in one transaction.
// It returns the number of insights written.
func (s *Service) Import(ctx context.Context, items []ImportItem) (int, error) {
	if err := validateImport(items); err != nil {
		return 0, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, it := range items {
			if err := s.insights.Upsert(ctx, domain.InsightInput{Date: it.Date, GeneratedInsight: it.GeneratedInsight}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "insights imported", slog.Int("count", len(items)))
	return len(items), nil
}
