// Package insight implements the insight repository using PostgreSQL.
// Keywords are stored as a JSONB array; the date column is the natural key.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/insight-calendar/internal/adapter/postgres"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	getByDateSQL = `
SELECT id, date, insight_text, keywords, context, question, created_at
FROM insights
WHERE date = $1`

	upsertSQL = `
INSERT INTO insights (date, insight_text, keywords, context, question)
VALUES ($1, $2, $3::jsonb, $4, $5)
ON CONFLICT (date) DO UPDATE SET
    insight_text = EXCLUDED.insight_text,
    keywords     = EXCLUDED.keywords,
    context      = EXCLUDED.context,
    question     = EXCLUDED.question`

	recentSQL = `
SELECT id, date, insight_text, keywords, context, question, created_at
FROM insights
ORDER BY date DESC
LIMIT $1`
)

// Repo provides insight persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new insight repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByDate returns the insight stored for date.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByDate(ctx context.Context, date string) (*domain.Insight, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		row      insightRow
		keywords []byte
	)
	err := q.QueryRow(ctx, getByDateSQL, date).Scan(
		&row.ID, &row.Date, &row.InsightText, &keywords, &row.Context, &row.Question, &row.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "insight", date)
	}

	return row.toDomain(keywords)
}

// GetByMonth returns calendar items for every stored date of the month, ascending.
// An empty month yields an empty, non-nil slice.
func (r *Repo) GetByMonth(ctx context.Context, year, month int) ([]domain.CalendarItem, error) {
	from, to := domain.MonthRange(year, month)

	query, args, err := psql.
		Select("date", "insight_text").
		From("insights").
		Where(sq.GtOrEq{"date": from}).
		Where(sq.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build month query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "insight month", fmt.Sprintf("%04d-%02d", year, month))
	}
	defer rows.Close()

	items := make([]domain.CalendarItem, 0)
	for rows.Next() {
		var (
			date time.Time
			text string
		)
		if err := rows.Scan(&date, &text); err != nil {
			return nil, postgres.MapError(err, "insight month", from)
		}
		items = append(items, domain.CalendarItem{
			Date:        date.Format(domain.DateLayout),
			InsightText: text,
			HasInsight:  true,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "insight month", from)
	}

	return items, nil
}

// Recent returns up to limit insights, newest date first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.Insight, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, recentSQL, limit)
	if err != nil {
		return nil, postgres.MapError(err, "insight recent", fmt.Sprint(limit))
	}
	defer rows.Close()

	out := make([]domain.Insight, 0, limit)
	for rows.Next() {
		var (
			row      insightRow
			keywords []byte
		)
		if err := rows.Scan(&row.ID, &row.Date, &row.InsightText, &keywords, &row.Context, &row.Question, &row.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "insight recent", fmt.Sprint(limit))
		}
		ins, err := row.toDomain(keywords)
		if err != nil {
			return nil, err
		}
		out = append(out, *ins)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "insight recent", fmt.Sprint(limit))
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the insight or replaces the content of the existing row for
// the same date. id and created_at of an existing row are kept.
func (r *Repo) Upsert(ctx context.Context, in domain.InsightInput) error {
	keywords, err := json.Marshal(in.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, upsertSQL,
		in.Date, in.InsightText, string(keywords), in.Context, in.Question,
	)
	if err != nil {
		return postgres.MapError(err, "insight", in.Date)
	}
	return nil
}

// Ping checks connectivity for health probes.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type insightRow struct {
	ID          int64
	Date        time.Time
	InsightText string
	Context     string
	Question    string
	CreatedAt   time.Time
}

func (row insightRow) toDomain(keywordsJSON []byte) (*domain.Insight, error) {
	var keywords []domain.Keyword
	if err := json.Unmarshal(keywordsJSON, &keywords); err != nil {
		return nil, domain.NewStorageError("insight decode keywords", err)
	}

	return &domain.Insight{
		ID:          row.ID,
		Date:        row.Date.Format(domain.DateLayout),
		InsightText: row.InsightText,
		Keywords:    keywords,
		Context:     row.Context,
		Question:    row.Question,
		CreatedAt:   row.CreatedAt,
	}, nil
}
