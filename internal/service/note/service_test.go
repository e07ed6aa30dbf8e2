package note

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/insight-calendar/internal/adapter/memory"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

func newTestService() (*Service, *memory.NoteRepo) {
	repo := memory.NewNoteRepo(time.Now)
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo), repo
}

func ptr(s string) *string { return &s }

func TestService_SaveAndGet(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.NoteInput{InsightDate: "2026-02-17", UserID: "u1", Content: ptr("memo")})
	require.NoError(t, err)
	assert.Positive(t, saved.ID)

	got, err := svc.Get(ctx, "2026-02-17", "u1")
	require.NoError(t, err)
	assert.Equal(t, "memo", *got.Content)
}

func TestService_Save_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	tests := map[string]domain.NoteInput{
		"bad date shape":  {InsightDate: "17-02-2026", UserID: "u1"},
		"impossible date": {InsightDate: "2026-02-30", UserID: "u1"},
		"missing user":    {InsightDate: "2026-02-17", UserID: " "},
		"too long":        {InsightDate: "2026-02-17", UserID: "u1", Content: ptr(strings.Repeat("가", domain.MaxNoteLength+1))},
	}
	for name, in := range tests {
		_, err := svc.Save(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}

	_, err := svc.Save(ctx, domain.NoteInput{InsightDate: "2026-02-17", UserID: "u1", Content: ptr(strings.Repeat("가", domain.MaxNoteLength))})
	assert.NoError(t, err, "content at the limit is accepted")
}

func TestService_Get(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "2026-02-17", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Get(ctx, "2026/02/17", "u1")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Get(ctx, "2026-02-31", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, "2026-02-17", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	for _, d := range []string{"2026-01-01", "2026-01-03"} {
		_, err := svc.Save(ctx, domain.NoteInput{InsightDate: d, UserID: "u1"})
		require.NoError(t, err)
	}

	notes, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "2026-01-03", notes[0].InsightDate)

	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	n, err := svc.Save(ctx, domain.NoteInput{InsightDate: "2026-02-17", UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, n.ID))
	assert.ErrorIs(t, svc.Delete(ctx, n.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), domain.ErrValidation)
}

func TestService_Save_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	repo := &failingRepo{err: domain.NewStorageError("note", errors.New("db down"))}
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	_, err := svc.Save(context.Background(), domain.NoteInput{InsightDate: "2026-02-17", UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrStorage)
}

type failingRepo struct{ err error }

func (r *failingRepo) GetByDate(context.Context, string, string) (*domain.Note, error) {
	return nil, r.err
}
func (r *failingRepo) Save(context.Context, domain.NoteInput) (*domain.Note, error) { return nil, r.err }
func (r *failingRepo) ListByUser(context.Context, string) ([]domain.Note, error)     { return nil, r.err }
func (r *failingRepo) DeleteByID(context.Context, int64) error                       { return r.err }
