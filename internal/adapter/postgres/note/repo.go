// Package note implements the note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/insight-calendar/internal/adapter/postgres"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var noteColumns = []string{"id", "insight_date", "user_id", "content", "created_at", "updated_at"}

const (
	getByDateSQL = `
SELECT id, insight_date, user_id, content, created_at, updated_at
FROM notes
WHERE insight_date = $1 AND user_id = $2`

	saveSQL = `
INSERT INTO notes (insight_date, user_id, content)
VALUES ($1, $2, $3)
ON CONFLICT (insight_date, user_id) DO UPDATE SET
    content    = EXCLUDED.content,
    updated_at = now()
RETURNING id, insight_date, user_id, content, created_at, updated_at`

	deleteSQL = `DELETE FROM notes WHERE id = $1`
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByDate returns the note of userID for date.
// Returns domain.ErrNotFound if the user has no note on that date.
func (r *Repo) GetByDate(ctx context.Context, date, userID string) (*domain.Note, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByDateSQL, date, userID)
	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", date+"/"+userID)
	}
	return n, nil
}

// Save upserts on (insight_date, user_id) and returns the stored row.
// created_at is kept on update; updated_at is bumped.
func (r *Repo) Save(ctx context.Context, in domain.NoteInput) (*domain.Note, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, saveSQL,
		in.InsightDate, in.UserID, ptrStringToPgText(in.Content),
	)
	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", in.InsightDate+"/"+in.UserID)
	}
	return n, nil
}

// ListByUser returns every note of userID, newest insight date first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("insight_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "notes of", userID)
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, postgres.MapError(err, "notes of", userID)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "notes of", userID)
	}

	return notes, nil
}

// DeleteByID removes a note. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	key := strconv.FormatInt(id, 10)

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "note", key)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*domain.Note, error) {
	var (
		n       domain.Note
		date    time.Time
		content pgtype.Text
	)
	if err := row.Scan(&n.ID, &date, &n.UserID, &content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.InsightDate = date.Format(domain.DateLayout)
	if content.Valid {
		s := content.String
		n.Content = &s
	}
	return &n, nil
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
