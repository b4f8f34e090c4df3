package store

import (
	"context"
	"database/sql"
	"errors"

	"newsboard/internal/apperr"
	"newsboard/internal/model"
)

// ListUsers returns every user.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.exec.QueryContext(ctx, "SELECT username, name, avatar_url FROM users")
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, apperr.FromStorage(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage(err)
	}
	return users, nil
}

// GetUser returns one user by username.
func (s *Store) GetUser(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.exec.QueryRowContext(ctx,
		"SELECT username, name, avatar_url FROM users WHERE username = $1", username,
	).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user does not exist")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &u, nil
}

// UserExists confirms a user exists, or fails with NotFound.
func (s *Store) UserExists(ctx context.Context, username string) error {
	var exists bool
	err := s.exec.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username,
	).Scan(&exists)
	if err != nil {
		return apperr.FromStorage(err)
	}
	if !exists {
		return apperr.NotFound("user does not exist")
	}
	return nil
}
