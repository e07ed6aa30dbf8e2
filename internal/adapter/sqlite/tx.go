package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type activeTxKey struct{}

// QuerierFromCtx returns the transaction stored in ctx, or db.
func QuerierFromCtx(ctx context.Context, db *sql.DB) Querier {
	if tx := activeTx(ctx); tx != nil {
		return tx
	}
	return db
}

func activeTx(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(activeTxKey{}).(*sql.Tx)
	return tx
}

// TxManager runs repository calls in one SQLite transaction.
type TxManager struct {
	db     *sql.DB
	tracer trace.Tracer
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{
		db:     db,
		tracer: otel.Tracer("github.com/heartmarshall/insight-calendar/internal/adapter/sqlite"),
	}
}

// RunInTx commits when fn returns nil and rolls back otherwise. A panic in
// fn rolls back and is re-raised. Nested calls join the active transaction;
// the single connection would otherwise block on a second BEGIN.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if activeTx(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := m.tracer.Start(ctx, "sqlite.tx")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStorageError("begin transaction", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, activeTxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.NewStorageError("commit transaction", err)
	}
	return nil
}
