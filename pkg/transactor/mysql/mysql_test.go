package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/countries-backend/pkg/transactor"
)

func TestWithinTransaction(t *testing.T) {
	errFn := errors.New("fn error")

	testTable := []struct {
		name         string
		fnErr        error
		mockBehavior func(mock sqlmock.Sqlmock)
		expectedErr  error
	}{
		{
			name: "commit",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE countries").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "rollback",
			fnErr: errFn,
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE countries").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			expectedErr: errFn,
		},
		{
			name:  "rollback failure keeps original error",
			fnErr: errFn,
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE countries").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback().WillReturnError(errors.New("connection lost"))
			},
			expectedErr: errFn,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.mockBehavior(mock)

			err = NewSQLManager(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
				if _, err := GetExecutor(ctx, db).ExecContext(ctx, "UPDATE countries SET population = 1"); err != nil {
					return err
				}
				return tc.fnErr
			})

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithinTransaction_Nested(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	manager := NewSQLManager(db)

	err = manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return manager.WithinTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_NoTransaction(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Same(t, db, GetExecutor(context.Background(), db))
}

func TestWithinTransaction_CommitHooks(t *testing.T) {
	testTable := []struct {
		name         string
		fnErr        error
		mockBehavior func(mock sqlmock.Sqlmock)
		expectedRun  bool
	}{
		{
			name: "run after commit",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			expectedRun: true,
		},
		{
			name:  "skipped on rollback",
			fnErr: errors.New("fn error"),
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
		},
		{
			name: "skipped on failed commit",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.mockBehavior(mock)

			manager := NewSQLManager(db)
			ran := false

			_ = manager.WithinTransaction(context.Background(), func(ctx context.Context) error {
				assert.True(t, transactor.InTransaction(ctx))

				// nested calls share the outer transaction and its hooks
				return manager.WithinTransaction(ctx, func(ctx context.Context) error {
					transactor.AfterCommit(ctx, func(context.Context) {
						ran = true
					})
					assert.False(t, ran)
					return tc.fnErr
				})
			})

			assert.Equal(t, tc.expectedRun, ran)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
