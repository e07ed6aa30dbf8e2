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

type noteKey struct {
	date   string
	userID string
}

// NoteRepo is the mock note store.
type NoteRepo struct {
	mu     sync.RWMutex
	notes  map[noteKey]domain.Note
	nextID int64
	now    func() time.Time
}

// NewNoteRepo creates an empty note store.
func NewNoteRepo(now func() time.Time) *NoteRepo {
	return &NoteRepo{
		notes: make(map[noteKey]domain.Note),
		now:   now,
	}
}

// GetByDate returns the note of userID for date or domain.ErrNotFound.
func (r *NoteRepo) GetByDate(_ context.Context, date, userID string) (*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[noteKey{date: date, userID: userID}]
	if !ok {
		return nil, fmt.Errorf("note %s/%s: %w", date, userID, domain.ErrNotFound)
	}
	return cloneNote(n), nil
}

// Save upserts on (date, user); created_at is kept and updated_at bumped.
func (r *NoteRepo) Save(_ context.Context, in domain.NoteInput) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := noteKey{date: in.InsightDate, userID: in.UserID}
	now := r.now()

	n, ok := r.notes[key]
	if !ok {
		r.nextID++
		n = domain.Note{
			ID:          r.nextID,
			InsightDate: in.InsightDate,
			UserID:      in.UserID,
			CreatedAt:   now,
		}
	}
	n.Content = cloneString(in.Content)
	n.UpdatedAt = now
	r.notes[key] = n

	return cloneNote(n), nil
}

// ListByUser returns the user's notes, newest date first.
func (r *NoteRepo) ListByUser(_ context.Context, userID string) ([]domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Note, 0)
	for k, n := range r.notes {
		if k.userID == userID {
			out = append(out, *cloneNote(n))
		}
	}
	slices.SortFunc(out, func(a, b domain.Note) int { return strings.Compare(b.InsightDate, a.InsightDate) })
	return out, nil
}

// DeleteByID removes the note with id or returns domain.ErrNotFound.
func (r *NoteRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, n := range r.notes {
		if n.ID == id {
			delete(r.notes, k)
			return nil
		}
	}
	return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
}

func cloneNote(n domain.Note) *domain.Note {
	n.Content = cloneString(n.Content)
	return &n
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
