package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// GetByDate returns the insight for date. A well-formed string that is not
// a real calendar day (2026-02-31) has no insight and yields ErrNotFound.
func (s *Service) GetByDate(ctx context.Context, date string) (*domain.Insight, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("insight %s: %w", date, domain.ErrNotFound)
	}
	return s.insights.GetByDate(ctx, date)
}

// GetByMonth returns the calendar items of the month, ascending.
func (s *Service) GetByMonth(ctx context.Context, year, month int) ([]domain.CalendarItem, error) {
	if err := domain.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	return s.insights.GetByMonth(ctx, year, month)
}

// Recent returns the newest insights. A zero limit means DefaultRecentLimit.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Insight, error) {
	if limit == 0 {
		limit = DefaultRecentLimit
	}
	if limit < 1 || limit > MaxRecentLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxRecentLimit))
	}
	return s.insights.Recent(ctx, limit)
}
