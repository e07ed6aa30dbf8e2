package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNoteLength bounds the size of a note body in runes.
const MaxNoteLength = 10000

// Note is a user's private annotation on one insight date.
type Note struct {
	ID          int64
	InsightDate string
	UserID      string
	Content     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteInput is what the store receives on save.
type NoteInput struct {
	InsightDate string
	UserID      string
	Content     *string
}

// Validate checks the natural key and the content size.
func (n NoteInput) Validate() error {
	var errs []FieldError

	if err := ValidateDate(n.InsightDate); err != nil {
		errs = append(errs, FieldError{Field: "insight_date", Message: "must be YYYY-MM-DD"})
	}
	if strings.TrimSpace(n.UserID) == "" {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if n.Content != nil && utf8.RuneCountInString(*n.Content) > MaxNoteLength {
		errs = append(errs, FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
