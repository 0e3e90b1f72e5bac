package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"capplan/internal/core/tx"
	"capplan/pkg/logger"
)

var tracer = otel.Tracer("capplan/tx")

var _ tx.ReadOnlyManager = (*TxManager)(nil)

const defaultStatementTimeout = 30 * time.Second

// txMode selects how a top-level transaction is opened.
type txMode int

const (
	// modeWrite is used by document posting and catalog edits.
	modeWrite txMode = iota
	// modeSnapshot is used by capacity calculations: one read-only snapshot
	// for the whole input set.
	modeSnapshot
)

func (m txMode) String() string {
	if m == modeSnapshot {
		return "snapshot"
	}
	return "write"
}

func (m txMode) options() pgx.TxOptions {
	if m == modeSnapshot {
		return pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	}
	return pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}
}

// statementTimeoutSQL returns the SET LOCAL statement, or "" for d <= 0.
func statementTimeoutSQL(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", d.Milliseconds())
}

// TxManager opens pgx transactions and carries them through ctx so repositories
// join the caller's transaction. Nested calls reuse the outer transaction.
type TxManager struct {
	pool             *pgxpool.Pool
	statementTimeout time.Duration
}

// NewTxManager creates a new transaction manager.
func NewTxManager(pool *Pool) *TxManager {
	return &TxManager{pool: pool.Pool, statementTimeout: defaultStatementTimeout}
}

// WithStatementTimeout overrides the per-transaction statement timeout. Zero disables it.
func (m *TxManager) WithStatementTimeout(d time.Duration) *TxManager {
	m.statementTimeout = d
	return m
}

type txKey struct{}

// Tx is the transaction stored in ctx.
type Tx struct {
	pgx.Tx
	mode txMode
}

// RunInTransaction executes fn in a read-write transaction.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, modeWrite, fn)
}

// ReadOnly executes fn in a read-only transaction.
// RepeatableRead gives every query inside fn the same snapshot.
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, modeSnapshot, fn)
}

func (m *TxManager) run(ctx context.Context, mode txMode, fn func(ctx context.Context) error) error {
	if existing := m.GetTx(ctx); existing != nil {
		// Вложенный вызов работает в режиме внешней транзакции
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(attribute.String("tx.mode", mode.String())))
	defer span.End()

	pgTx, err := m.pool.BeginTx(ctx, mode.options())
	if err != nil {
		return fmt.Errorf("begin %s transaction: %w", mode, err)
	}

	if stmt := statementTimeoutSQL(m.statementTimeout); stmt != "" {
		if _, err := pgTx.Exec(ctx, stmt); err != nil {
			_ = pgTx.Rollback(ctx)
			return fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	txCtx := context.WithValue(ctx, txKey{}, &Tx{Tx: pgTx, mode: mode})
	if err := fn(txCtx); err != nil {
		// ctx может быть уже отменён, откат делаем на фоне
		if rbErr := pgTx.Rollback(context.Background()); rbErr != nil {
			logger.Error(ctx, "rollback failed", "mode", mode.String(), "error", rbErr, "original_error", err)
		}
		return err
	}

	if err := pgTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s transaction: %w", mode, err)
	}
	return nil
}

// GetTx returns the current transaction from context, or nil if none.
func (m *TxManager) GetTx(ctx context.Context) *Tx {
	if t, ok := ctx.Value(txKey{}).(*Tx); ok {
		return t
	}
	return nil
}

// Querier is satisfied by both pgx.Tx and the pool.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetQuerier returns the transaction in ctx, falling back to the pool.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if t := m.GetTx(ctx); t != nil {
		return t.Tx
	}
	return m.pool
}
