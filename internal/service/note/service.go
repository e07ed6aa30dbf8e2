// Package note manages per-user notes attached to insight dates.
package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

type noteRepo interface {
	GetByDate(ctx context.Context, date, userID string) (*domain.Note, error)
	Save(ctx context.Context, in domain.NoteInput) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service provides note operations.
type Service struct {
	notes noteRepo
	log   *slog.Logger
}

// NewService creates a new note service.
func NewService(log *slog.Logger, notes noteRepo) *Service {
	return &Service{
		notes: notes,
		log:   log.With("service", "note"),
	}
}

// Get returns the note of userID for date.
func (s *Service) Get(ctx context.Context, date, userID string) (*domain.Note, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("note %s: %w", date, domain.ErrNotFound)
	}
	return s.notes.GetByDate(ctx, date, userID)
}

// Save creates or replaces the note of in.UserID for in.InsightDate.
func (s *Service) Save(ctx context.Context, in domain.NoteInput) (*domain.Note, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := time.Parse(domain.DateLayout, in.InsightDate); err != nil {
		return nil, domain.NewValidationError("insight_date", "not a calendar date")
	}

	n, err := s.notes.Save(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "note saved", slog.Int64("id", n.ID), slog.String("date", n.InsightDate))
	return n, nil
}

// List returns the user's notes, newest date first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Note, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.notes.ListByUser(ctx, userID)
}

// Delete removes a note by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.notes.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "note deleted", slog.Int64("id", id))
	return nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}
