package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsboard/internal/apperr"
	"newsboard/internal/dbexec"
	"newsboard/internal/model"

	"golang.org/x/sync/errgroup"
)

const articleByIDSQL = "SELECT a.article_id, a.author, a.title, a.body, a.topic, " +
	"a.article_img_url, a.created_at, a.votes, COUNT(c.comment_id)::INT AS comment_count " +
	"FROM articles a " +
	"LEFT JOIN comments c ON c.article_id = a.article_id " +
	"WHERE a.article_id = $1 " +
	"GROUP BY a.article_id"

// CreateArticleInput holds the validated fields for an article insert.
type CreateArticleInput struct {
	Author string
	Title  string
	Body   string
	Topic  string
	// ArticleImgURL is optional; when nil the column is omitted so the
	// schema default applies.
	ArticleImgURL *string
}

// GetArticle returns one article with its derived comment_count.
func (s *Store) GetArticle(ctx context.Context, id int) (*model.Article, error) {
	var a model.Article
	err := s.exec.QueryRowContext(ctx, articleByIDSQL, id).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.ArticleImgURL, &a.CreatedAt, &a.Votes, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("article does not exist")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &a, nil
}

// ArticleExists confirms an article exists, or fails with NotFound.
func (s *Store) ArticleExists(ctx context.Context, id int) error {
	var exists bool
	err := s.exec.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return apperr.FromStorage(err)
	}
	if !exists {
		return apperr.NotFound("article does not exist")
	}
	return nil
}

// ListArticles executes a validated listing. The page query, the total-count
// query (when p was given), and the topic existence check (when filtering)
// are issued concurrently; the first failure wins. The returned total count
// is nil unless p was supplied.
func (s *Store) ListArticles(ctx context.Context, q *ListQuery) ([]model.Article, *int, error) {
	pageSQL, pageArgs, err := q.buildArticlesSelect(s.collation)
	if err != nil {
		return nil, nil, apperr.FromStorage(err)
	}

	g, gctx := errgroup.WithContext(ctx)

	var articles []model.Article
	g.Go(func() error {
		var err error
		articles, err = s.queryArticles(gctx, pageSQL, pageArgs...)
		return err
	})

	if q.HasTopic {
		// A nonexistent topic is a distinct NotFound, not an empty list.
		g.Go(func() error {
			return s.TopicExists(gctx, q.Topic)
		})
	}

	var total int
	if q.HasPage {
		countSQL, countArgs, err := q.buildArticlesCount()
		if err != nil {
			return nil, nil, apperr.FromStorage(err)
		}
		g.Go(func() error {
			if err := s.exec.QueryRowContext(gctx, countSQL, countArgs...).Scan(&total); err != nil {
				return apperr.FromStorage(err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if !q.HasPage {
		return articles, nil, nil
	}
	return articles, &total, nil
}

// CreateArticle validates the referenced topic and author concurrently, then
// inserts. A missing reference surfaces as Unprocessable.
func (s *Store) CreateArticle(ctx context.Context, in CreateArticleInput) (*model.Article, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return asInsertPrecondition(s.TopicExists(gctx, in.Topic), in.Topic)
	})
	g.Go(func() error {
		return asInsertPrecondition(s.UserExists(gctx, in.Author), in.Author)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	img := Unset("article_img_url")
	if in.ArticleImgURL != nil {
		img = Optional("article_img_url", *in.ArticleImgURL)
	}
	stmt := BuildInsert([]Field{
		{Name: "author", Value: in.Author},
		{Name: "title", Value: in.Title},
		{Name: "body", Value: in.Body},
		{Name: "topic", Value: in.Topic},
	}, []OptionalField{img})

	var a model.Article
	err := s.exec.QueryRowContext(ctx,
		stmt.SQL("articles", "article_id, author, title, body, topic, article_img_url, created_at, votes"),
		stmt.Values...,
	).Scan(&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic, &a.ArticleImgURL, &a.CreatedAt, &a.Votes)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	a.CommentCount = 0
	return &a, nil
}

// IncrementArticleVotes atomically adds delta to an article's votes and
// returns the updated article with its derived comment_count.
func (s *Store) IncrementArticleVotes(ctx context.Context, id int, delta int) (*model.Article, error) {
	var a model.Article
	err := s.exec.QueryRowContext(ctx,
		"UPDATE articles SET votes = votes + $2 WHERE article_id = $1 "+
			"RETURNING article_id, author, title, body, topic, article_img_url, created_at, votes",
		id, delta,
	).Scan(&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic, &a.ArticleImgURL, &a.CreatedAt, &a.Votes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("article does not exist")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}

	err = s.exec.QueryRowContext(ctx,
		"SELECT COUNT(*)::INT FROM comments WHERE article_id = $1", id,
	).Scan(&a.CommentCount)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &a, nil
}

// DeleteArticle removes an article and all its comments in one transaction.
// A missing article rolls everything back and fails with NotFound.
func (s *Store) DeleteArticle(ctx context.Context, id int) error {
	return s.exec.WithinTx(ctx, func(q dbexec.Querier) error {
		if _, err := q.ExecContext(ctx, "DELETE FROM comments WHERE article_id = $1", id); err != nil {
			return apperr.FromStorage(err)
		}
		res, err := q.ExecContext(ctx, "DELETE FROM articles WHERE article_id = $1", id)
		if err != nil {
			return apperr.FromStorage(err)
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return apperr.FromStorage(err)
		}
		if deleted == 0 {
			return apperr.NotFound("article does not exist")
		}
		return nil
	})
}

func (s *Store) queryArticles(ctx context.Context, query string, args ...any) ([]model.Article, error) {
	rows, err := s.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
			&a.ArticleImgURL, &a.CreatedAt, &a.Votes, &a.CommentCount,
		); err != nil {
			return nil, apperr.FromStorage(err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStorage(err)
	}
	return articles, nil
}

// asInsertPrecondition reclassifies a missing referenced entity as
// Unprocessable: the request was well-formed but refers to data that does
// not exist.
func asInsertPrecondition(err error, value string) error {
	if err == nil {
		return nil
	}
	if apperr.KindOf(err) == apperr.KindNotFound {
		return apperr.Unprocessable(fmt.Sprintf("%s cannot be processed", value))
	}
	return err
}
