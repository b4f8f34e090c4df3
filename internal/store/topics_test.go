package store

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/apperr"
)

func TestListTopics(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("SELECT slug, description FROM topics").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("mitch", "The man, the Mitch, the legend").
			AddRow("cats", "Not dogs").
			AddRow("paper", nil))

	topics, err := s.ListTopics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "mitch", topics[0].Slug)
	require.NotNil(t, topics[1].Description)
	assert.Equal(t, "Not dogs", *topics[1].Description)
	assert.Nil(t, topics[2].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopic_NotFound(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("SELECT slug, description FROM topics WHERE slug = $1").
		WithArgs("not_a_topic").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}))

	_, err := s.GetTopic(context.Background(), "not_a_topic")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "topic does not exist", apperr.ClientMessage(err))
}

func TestCreateTopic(t *testing.T) {
	s, mock, _ := newMockStore(t)

	desc := "all things dog"
	mock.ExpectQuery("INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING slug, description").
		WithArgs("dogs", desc).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).AddRow("dogs", desc))

	topic, err := s.CreateTopic(context.Background(), "dogs", &desc)
	require.NoError(t, err)
	assert.Equal(t, "dogs", topic.Slug)
	require.NotNil(t, topic.Description)
	assert.Equal(t, desc, *topic.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTopic_WithoutDescription(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("INSERT INTO topics (slug) VALUES ($1) RETURNING slug, description").
		WithArgs("dogs").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).AddRow("dogs", nil))

	topic, err := s.CreateTopic(context.Background(), "dogs", nil)
	require.NoError(t, err)
	assert.Equal(t, "dogs", topic.Slug)
	assert.Nil(t, topic.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTopic_DuplicateSlugIsConflict(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery("INSERT INTO topics (slug) VALUES ($1) RETURNING slug, description").
		WithArgs("mitch").
		WillReturnError(pgUniqueViolation("Key (slug)=(mitch) already exists."))

	_, err := s.CreateTopic(context.Background(), "mitch", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "mitch already exists", apperr.ClientMessage(err))
}
