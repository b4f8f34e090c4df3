package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStorage_UniqueViolation(t *testing.T) {
	err := FromStorage(&pgconn.PgError{
		Code:   "23505",
		Detail: "Key (slug)=(mitch) already exists.",
	})
	assert.Equal(t, KindConflict, err.Kind)
	assert.Equal(t, "mitch already exists", err.Message)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestFromStorage_ForeignKeyViolation(t *testing.T) {
	err := FromStorage(&pgconn.PgError{
		Code:   "23503",
		Detail: "Key (topic)=(not_a_topic) is not present in table \"topics\".",
	})
	assert.Equal(t, KindUnprocessable, err.Kind)
	assert.Equal(t, "not_a_topic cannot be processed", err.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}

func TestFromStorage_MissingSchema(t *testing.T) {
	for _, code := range []string{"42P01", "3D000"} {
		err := FromStorage(&pgconn.PgError{Code: code})
		assert.Equal(t, KindStorageUnavailable, err.Kind, "code %s", code)
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
		assert.Equal(t, "Database error", ClientMessage(err))
	}
}

func TestFromStorage_OtherSQLState(t *testing.T) {
	err := FromStorage(&pgconn.PgError{Code: "22P02"})
	assert.Equal(t, KindBadRequest, err.Kind)
	assert.Equal(t, "Bad request", err.Message)
}

func TestFromStorage_UnknownError(t *testing.T) {
	cause := errors.New("connection reset")
	err := FromStorage(cause)
	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, "Internal error", ClientMessage(err))
	assert.ErrorIs(t, err, cause)
}

func TestFromStorage_PassesThroughClassifiedErrors(t *testing.T) {
	original := NotFound("article does not exist")
	wrapped := fmt.Errorf("lookup: %w", original)
	require.Equal(t, original, FromStorage(wrapped))
}

func TestClientMessage_HidesInternalDetail(t *testing.T) {
	err := &Error{Kind: KindInternal, Message: "pq: out of shared memory"}
	assert.Equal(t, "Internal error", ClientMessage(err))
}

func TestHTTPStatus_Taxonomy(t *testing.T) {
	cases := map[Kind]int{
		KindBadRequest:         http.StatusBadRequest,
		KindNotFound:           http.StatusNotFound,
		KindUnprocessable:      http.StatusUnprocessableEntity,
		KindConflict:           http.StatusConflict,
		KindStorageUnavailable: http.StatusInternalServerError,
		KindInternal:           http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(New(kind, "x")))
	}
}
