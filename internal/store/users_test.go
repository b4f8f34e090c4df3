package store

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/apperr"
)

func TestListUsers(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("SELECT username, name, avatar_url FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("butter_bridge", "jonny", "https://example.com/a.jpg").
			AddRow("icellusedkars", "sam", "https://example.com/b.jpg"))

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "butter_bridge", users[0].Username)
	assert.Equal(t, "sam", users[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("SELECT username, name, avatar_url FROM users WHERE username = $1").
		WithArgs("butter_bridge").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("butter_bridge", "jonny", "https://example.com/a.jpg"))

	u, err := s.GetUser(context.Background(), "butter_bridge")
	require.NoError(t, err)
	assert.Equal(t, "jonny", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NotFound(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("SELECT username, name, avatar_url FROM users WHERE username = $1").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}))

	_, err := s.GetUser(context.Background(), "nobody")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "user does not exist", apperr.ClientMessage(err))
}
