package store

import (
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"newsboard/internal/dbexec"
)

// newMockStore builds a Store over a sqlmock handle with exact SQL matching.
func newMockStore(t *testing.T, opts ...Option) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(dbexec.NewStandardExecutor(db), opts...), mock, db
}

var testCreatedAt = time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

func articleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"article_id", "author", "title", "body", "topic",
		"article_img_url", "created_at", "votes", "comment_count",
	})
}

func commentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"comment_id", "article_id", "author", "body", "votes", "created_at",
	})
}

func pgUniqueViolation(detail string) *pgconn.PgError {
	return &pgconn.PgError{Code: "23505", Detail: detail}
}
