// Package note implements the note repository on SQLite.
package note

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insight-calendar/internal/adapter/sqlite"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

const (
	getByDateSQL = `
SELECT id, insight_date, user_id, content, created_at, updated_at
FROM notes
WHERE insight_date = ? AND user_id = ?`

	saveSQL = `
INSERT INTO notes (insight_date, user_id, content)
VALUES (?, ?, ?)
ON CONFLICT (insight_date, user_id) DO UPDATE SET
    content    = excluded.content,
    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
RETURNING id, insight_date, user_id, content, created_at, updated_at`

	deleteSQL = `DELETE FROM notes WHERE id = ?`
)

// Repo provides note persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new note repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// GetByDate returns the note of userID for date or domain.ErrNotFound.
func (r *Repo) GetByDate(ctx context.Context, date, userID string) (*domain.Note, error) {
	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, getByDateSQL, date, userID)
	n, err := scanNote(row)
	if err != nil {
		return nil, sqlite.MapError(err, "note", date+"/"+userID)
	}
	return n, nil
}

// Save upserts on (insight_date, user_id) and returns the stored row.
func (r *Repo) Save(ctx context.Context, in domain.NoteInput) (*domain.Note, error) {
	var content sql.NullString
	if in.Content != nil {
		content = sql.NullString{String: *in.Content, Valid: true}
	}

	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, saveSQL, in.InsightDate, in.UserID, content)
	n, err := scanNote(row)
	if err != nil {
		return nil, sqlite.MapError(err, "note", in.InsightDate+"/"+in.UserID)
	}
	return n, nil
}

// ListByUser returns the user's notes, newest insight date first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	query, args, err := sq.
		Select("id", "insight_date", "user_id", "content", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("insight_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, "notes of", userID)
	}
	defer rows.Close()

	out := make([]domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, sqlite.MapError(err, "notes of", userID)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, "notes of", userID)
	}
	return out, nil
}

// DeleteByID removes the note or returns domain.ErrNotFound.
func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	key := strconv.FormatInt(id, 10)

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, deleteSQL, id)
	if err != nil {
		return sqlite.MapError(err, "note", key)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return sqlite.MapError(err, "note", key)
	}
	if n == 0 {
		return fmt.Errorf("note %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(s rowScanner) (*domain.Note, error) {
	var (
		n                    domain.Note
		content              sql.NullString
		createdAt, updatedAt string
	)
	if err := s.Scan(&n.ID, &n.InsightDate, &n.UserID, &content, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if content.Valid {
		v := content.String
		n.Content = &v
	}

	var err error
	if n.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return nil, domain.NewStorageError("note decode created_at", err)
	}
	if n.UpdatedAt, err = sqlite.ParseTime(updatedAt); err != nil {
		return nil, domain.NewStorageError("note decode updated_at", err)
	}
	return &n, nil
}
