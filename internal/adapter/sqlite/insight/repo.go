// Package insight implements the insight repository on SQLite.
// Keywords are kept as a JSON text column; date is stored as YYYY-MM-DD text.
package insight

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insight-calendar/internal/adapter/sqlite"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

const (
	getByDateSQL = `
SELECT id, date, insight_text, keywords, context, question, created_at
FROM insights
WHERE date = ?`

	upsertSQL = `
INSERT INTO insights (date, insight_text, keywords, context, question)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (date) DO UPDATE SET
    insight_text = excluded.insight_text,
    keywords     = excluded.keywords,
    context      = excluded.context,
    question     = excluded.question`

	recentSQL = `
SELECT id, date, insight_text, keywords, context, question, created_at
FROM insights
ORDER BY date DESC
LIMIT ?`
)

// Repo provides insight persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new insight repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// GetByDate returns the insight for date or domain.ErrNotFound.
func (r *Repo) GetByDate(ctx context.Context, date string) (*domain.Insight, error) {
	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, getByDateSQL, date)
	ins, err := scanInsight(row)
	if err != nil {
		return nil, sqlite.MapError(err, "insight", date)
	}
	return ins, nil
}

// GetByMonth returns the month's calendar items ascending by date.
func (r *Repo) GetByMonth(ctx context.Context, year, month int) ([]domain.CalendarItem, error) {
	from, to := domain.MonthRange(year, month)

	query, args, err := sq.
		Select("date", "insight_text").
		From("insights").
		Where(sq.GtOrEq{"date": from}).
		Where(sq.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build month query: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, "insight month", from)
	}
	defer rows.Close()

	items := make([]domain.CalendarItem, 0)
	for rows.Next() {
		item := domain.CalendarItem{HasInsight: true}
		if err := rows.Scan(&item.Date, &item.InsightText); err != nil {
			return nil, sqlite.MapError(err, "insight month", from)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, "insight month", from)
	}
	return items, nil
}

// Recent returns up to limit insights, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.Insight, error) {
	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, recentSQL, limit)
	if err != nil {
		return nil, sqlite.MapError(err, "insight recent", fmt.Sprint(limit))
	}
	defer rows.Close()

	out := make([]domain.Insight, 0, limit)
	for rows.Next() {
		ins, err := scanInsight(rows)
		if err != nil {
			return nil, sqlite.MapError(err, "insight recent", fmt.Sprint(limit))
		}
		out = append(out, *ins)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, "insight recent", fmt.Sprint(limit))
	}
	return out, nil
}

// Upsert inserts or replaces the content for in.Date; id and created_at survive.
func (r *Repo) Upsert(ctx context.Context, in domain.InsightInput) error {
	keywords, err := json.Marshal(in.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	_, err = sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, upsertSQL,
		in.Date, in.InsightText, string(keywords), in.Context, in.Question,
	)
	return sqlite.MapError(err, "insight", in.Date)
}

// Ping checks the database handle.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInsight(s rowScanner) (*domain.Insight, error) {
	var (
		ins       domain.Insight
		keywords  string
		createdAt string
	)
	if err := s.Scan(&ins.ID, &ins.Date, &ins.InsightText, &keywords, &ins.Context, &ins.Question, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(keywords), &ins.Keywords); err != nil {
		return nil, domain.NewStorageError("insight decode keywords", err)
	}

	t, err := sqlite.ParseTime(createdAt)
	if err != nil {
		return nil, domain.NewStorageError("insight decode created_at", err)
	}
	ins.CreatedAt = t

	return &ins, nil
}
