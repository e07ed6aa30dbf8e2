package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// sqlstateErrors maps the SQLSTATE codes repositories can trigger on
// insights and notes to domain sentinels.
var sqlstateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: second note for a date
	"23503": domain.ErrNotFound,      // foreign_key_violation: note for a missing insight
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"22007": domain.ErrValidation,    // invalid_datetime_format
	"22008": domain.ErrValidation,    // datetime_field_overflow: 2026-02-30
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError wraps err for the repository operation on entity key.
// Context cancellation passes through unmapped so callers can tell a
// timeout from a broken store; other unknown failures become
// domain.StorageError.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	subject := entity + " " + key

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlstateErrors[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s (%s): %w", subject, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s: %w", subject, sentinel)
		}
	}

	return domain.NewStorageError(subject, err)
}
