// Package memory provides process-lifetime repositories used when no database
// is configured. Every repository owns its map and guards it with a mutex;
// nothing is shared between instances.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// MockDays is how many KST days, ending today, the mock dataset covers.
const MockDays = 7

// InsightRepo is the mock insight store.
type InsightRepo struct {
	mu     sync.RWMutex
	byDate map[string]domain.Insight
	nextID int64
	now    func() time.Time
}

// NewInsightRepo builds a store pre-filled with one entry per day for today
// and the MockDays-1 preceding KST days, taken in order from dataset.
// Dates are fixed at construction time.
func NewInsightRepo(now func() time.Time, dataset []domain.GeneratedInsight) *InsightRepo {
	r := &InsightRepo{
		byDate: make(map[string]domain.Insight, MockDays),
		now:    now,
	}

	t := now()
	for i := 0; i < MockDays && i < len(dataset); i++ {
		r.insertLocked(domain.DaysBefore(t, i), dataset[i], t)
	}
	return r
}

// NewEmptyInsightRepo builds a mock store with no entries.
func NewEmptyInsightRepo(now func() time.Time) *InsightRepo {
	return NewInsightRepo(now, nil)
}

// GetByDate returns the entry for date or domain.ErrNotFound.
func (r *InsightRepo) GetByDate(_ context.Context, date string) (*domain.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ins, ok := r.byDate[date]
	if !ok {
		return nil, fmt.Errorf("insight %s: %w", date, domain.ErrNotFound)
	}
	ins.Keywords = slices.Clone(ins.Keywords)
	return &ins, nil
}

// GetByMonth returns the month's entries ascending by date.
func (r *InsightRepo) GetByMonth(_ context.Context, year, month int) ([]domain.CalendarItem, error) {
	from, to := domain.MonthRange(year, month)

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.CalendarItem, 0)
	for date, ins := range r.byDate {
		if date >= from && date <= to {
			items = append(items, domain.CalendarItem{Date: date, InsightText: ins.InsightText, HasInsight: true})
		}
	}
	slices.SortFunc(items, func(a, b domain.CalendarItem) int { return strings.Compare(a.Date, b.Date) })
	return items, nil
}

// Recent returns up to limit entries, newest date first.
func (r *InsightRepo) Recent(_ context.Context, limit int) ([]domain.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Insight, 0, len(r.byDate))
	for _, ins := range r.byDate {
		ins.Keywords = slices.Clone(ins.Keywords)
		out = append(out, ins)
	}
	slices.SortFunc(out, func(a, b domain.Insight) int { return strings.Compare(b.Date, a.Date) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Upsert stores the entry, keeping id and created_at of an existing date.
func (r *InsightRepo) Upsert(_ context.Context, in domain.InsightInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byDate[in.Date]; ok {
		existing.InsightText = in.InsightText
		existing.Keywords = slices.Clone(in.Keywords)
		existing.Context = in.Context
		existing.Question = in.Question
		r.byDate[in.Date] = existing
		return nil
	}

	r.insertLocked(in.Date, in.GeneratedInsight, r.now())
	return nil
}

// Ping always succeeds.
func (r *InsightRepo) Ping(context.Context) error { return nil }

func (r *InsightRepo) insertLocked(date string, g domain.GeneratedInsight, at time.Time) {
	r.nextID++
	r.byDate[date] = domain.Insight{
		ID:          r.nextID,
		Date:        date,
		InsightText: g.InsightText,
		Keywords:    slices.Clone(g.Keywords),
		Context:     g.Context,
		Question:    g.Question,
		CreatedAt:   at,
	}
}

// TxManager satisfies the transaction contract for the mock store by
// running fn directly. Writes made before a failure are not undone.
type TxManager struct{}

// RunInTx calls fn with ctx.
func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
