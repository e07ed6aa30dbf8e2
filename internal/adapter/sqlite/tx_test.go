package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/insight-calendar/internal/adapter/sqlite"
	"github.com/heartmarshall/insight-calendar/internal/adapter/sqlite/testhelper"
	"github.com/heartmarshall/insight-calendar/internal/domain"
)

const insertInsightSQL = `INSERT INTO insights (date, insight_text, keywords, context, question) VALUES (?, 't', '[]', 'c', 'q')`

func countInsights(t *testing.T, q sqlite.Querier, date string) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRowContext(context.Background(), `SELECT count(*) FROM insights WHERE date = ?`, date).Scan(&n))
	return n
}

func TestTxManager_Commit(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	tm := sqlite.NewTxManager(db)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, insertInsightSQL, "2026-01-01")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countInsights(t, db, "2026-01-01"))
}

func TestTxManager_RollbackOnError(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	tm := sqlite.NewTxManager(db)
	sentinel := errors.New("fail")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, insertInsightSQL, "2026-01-02"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, countInsights(t, db, "2026-01-02"))
}

func TestTxManager_RollbackOnPanic(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	tm := sqlite.NewTxManager(db)

	assert.PanicsWithValue(t, "boom", func() {
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			_, _ = sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, insertInsightSQL, "2026-01-03")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countInsights(t, db, "2026-01-03"))
}

func TestTxManager_NestedCallJoinsOuter(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	tm := sqlite.NewTxManager(db)
	sentinel := errors.New("outer fails")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, insertInsightSQL, "2026-01-05"); err != nil {
			return err
		}
		inner := tm.RunInTx(ctx, func(ctx context.Context) error {
			_, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, insertInsightSQL, "2026-01-06")
			return err
		})
		require.NoError(t, inner)
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, countInsights(t, db, "2026-01-05"))
	assert.Equal(t, 0, countInsights(t, db, "2026-01-06"), "inner work belongs to the outer transaction")
}

func TestMapError(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, insertInsightSQL, "2026-01-04")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insertInsightSQL, "2026-01-04")
	require.Error(t, err)
	assert.ErrorIs(t, sqlite.MapError(err, "insight", "2026-01-04"), domain.ErrAlreadyExists)

	var n int
	err = db.QueryRowContext(ctx, `SELECT id FROM insights WHERE date = '1999-01-01'`).Scan(&n)
	assert.ErrorIs(t, sqlite.MapError(err, "insight", "1999-01-01"), domain.ErrNotFound)

	assert.NoError(t, sqlite.MapError(nil, "insight", "x"))
	assert.ErrorIs(t, sqlite.MapError(context.Canceled, "insight", "x"), context.Canceled)

	other := sqlite.MapError(errors.New("disk"), "insight", "x")
	assert.ErrorIs(t, other, domain.ErrStorage)
}
