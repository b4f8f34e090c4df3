package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"newsboard/internal/apperr"
	"newsboard/internal/model"

	"golang.org/x/sync/errgroup"
)

// ListArticleComments returns a window of comments for one article. The
// article existence check runs concurrently with the page query; a missing
// article fails with NotFound.
func (s *Store) ListArticleComments(ctx context.Context, articleID int, w *ListWindow) ([]model.Comment, error) {
	pageSQL, pageArgs, err := w.buildCommentsSelect(articleID)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}

	g, gctx := errgroup.WithContext(ctx)

	var comments []model.Comment
	g.Go(func() error {
		var err error
		comments, err = s.queryComments(gctx, pageSQL, pageArgs...)
		return err
	})
	g.Go(func() error {
		return s.ArticleExists(gctx, articleID)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment validates the referenced article and user concurrently, then
// inserts. A missing reference surfaces as Unprocessable.
func (s *Store) CreateComment(ctx context.Context, articleID int, username string, body string) (*model.Comment, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return asInsertPrecondition(s.ArticleExists(gctx, articleID), strconv.Itoa(articleID))
	})
	g.Go(func() error {
		return asInsertPrecondition(s.UserExists(gctx, username), username)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stmt := BuildInsert([]Field{
		{Name: "article_id", Value: articleID},
		{Name: "author", Value: username},
		{Name: "body", Value: body},
	}, nil)

	var c model.Comment
	err := s.exec.QueryRowContext(ctx,
		stmt.SQL("comments", "comment_id, article_id, author, body, votes, created_at"),
		stmt.Values...,
	).Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &c, nil
}

// IncrementCommentVotes atomically adds delta to a comment's votes.
func (s *Store) IncrementCommentVotes(ctx context.Context, id int, delta int) (*model.Comment, error) {
	var c model.Comment
	err := s.exec.QueryRowContext(ctx,
		"UPDATE comments SET votes = votes + $2 WHERE comment_id = $1 "+
			"RETURNING comment_id, article_id, author, body, votes, created_at",
		id, delta,
	).Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("comment does not exist")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &c, nil
}

// DeleteComment removes one comment by id.
func (s *Store) DeleteComment(ctx context.Context, id int) error {
	res, err := s.exec.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return apperr.FromStorage(err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return apperr.FromStorage(err)
	}
	if deleted == 0 {
		return apperr.NotFound("comment does not exist")
	}
	return nil
}

func (s *Store) queryComments(ctx context.Context, query string, args ...any) ([]model.Comment, error) {
	rows, err := s.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, apperr.FromStorage(err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage(err)
	}
	return comments, nil
}
