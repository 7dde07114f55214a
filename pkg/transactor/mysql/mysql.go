package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xw1nchester/countries-backend/pkg/transactor"
)

type txKey struct{}

type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlManager struct {
	db *sql.DB
}

func NewSQLManager(db *sql.DB) *sqlManager {
	return &sqlManager{db: db}
}

func (m *sqlManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	txCtx, runHooks := transactor.WithCommitHooks(ctx)
	txCtx = context.WithValue(txCtx, txKey{}, tx)

	err = fn(txCtx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	runHooks(ctx)

	return nil
}

func GetExecutor(ctx context.Context, db Executor) Executor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
