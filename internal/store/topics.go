package store

import (
	"context"
	"database/sql"
	"errors"

	"newsboard/internal/apperr"
	"newsboard/internal/model"
)

// ListTopics returns every topic.
func (s *Store) ListTopics(ctx context.Context) ([]model.Topic, error) {
	rows, err := s.exec.QueryContext(ctx, "SELECT slug, description FROM topics")
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	defer rows.Close()

	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, apperr.FromStorage(err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage(err)
	}
	return topics, nil
}

// GetTopic returns one topic by slug.
func (s *Store) GetTopic(ctx context.Context, slug string) (*model.Topic, error) {
	var t model.Topic
	err := s.exec.QueryRowContext(ctx,
		"SELECT slug, description FROM topics WHERE slug = $1", slug,
	).Scan(&t.Slug, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("topic does not exist")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &t, nil
}

// TopicExists confirms a topic exists, or fails with NotFound.
func (s *Store) TopicExists(ctx context.Context, slug string) error {
	var exists bool
	err := s.exec.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)", slug,
	).Scan(&exists)
	if err != nil {
		return apperr.FromStorage(err)
	}
	if !exists {
		return apperr.NotFound("topic does not exist")
	}
	return nil
}

// CreateTopic inserts a topic. Description is nullable and omitted from the
// statement when unset. A duplicate slug surfaces as Conflict.
func (s *Store) CreateTopic(ctx context.Context, slug string, description *string) (*model.Topic, error) {
	optional := Unset("description")
	if description != nil {
		optional = Optional("description", *description)
	}
	stmt := BuildInsert([]Field{{Name: "slug", Value: slug}}, []OptionalField{optional})

	var t model.Topic
	err := s.exec.QueryRowContext(ctx,
		stmt.SQL("topics", "slug, description"), stmt.Values...,
	).Scan(&t.Slug, &t.Description)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &t, nil
}
