package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// Querier is what repositories run SQL through: the pool, or the
// transaction RunInTx stored in the context.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type activeTxKey struct{}

// QuerierFromCtx prefers the transaction opened by RunInTx over pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx := activeTx(ctx); tx != nil {
		return tx
	}
	return pool
}

func activeTx(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(activeTxKey{}).(pgx.Tx)
	return tx
}

// TxManager groups repository calls, such as a bulk import, into one
// PostgreSQL transaction.
type TxManager struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// NewTxManager creates a TxManager on pool.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{
		pool:   pool,
		tracer: otel.Tracer("github.com/heartmarshall/insight-calendar/internal/adapter/postgres"),
	}
}

// RunInTx commits when fn returns nil and rolls back otherwise; a panic in
// fn rolls back and is re-raised. A call made while a transaction is already
// active joins it, so the outermost caller decides commit or rollback.
// Begin and commit failures are reported as domain storage errors.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if activeTx(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := m.tracer.Start(ctx, "postgres.tx")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.NewStorageError("begin transaction", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, activeTxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.NewStorageError("commit transaction", err)
	}
	return nil
}
