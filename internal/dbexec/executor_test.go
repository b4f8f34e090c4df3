package dbexec

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardExecutor_NilDB(t *testing.T) {
	e := NewStandardExecutor(nil)

	_, err := e.QueryContext(context.Background(), "SELECT 1")
	assert.Error(t, err)

	_, err = e.ExecContext(context.Background(), "SELECT 1")
	assert.Error(t, err)

	err = e.WithinTx(context.Background(), func(Querier) error { return nil })
	assert.Error(t, err)
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	e := NewStandardExecutor(db)
	err = e.WithinTx(context.Background(), func(q Querier) error {
		_, err := q.ExecContext(context.Background(), "DELETE FROM comments WHERE article_id = $1", 1)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	e := NewStandardExecutor(db)
	err = e.WithinTx(context.Background(), func(Querier) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
