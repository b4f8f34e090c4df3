// Package api exposes the discussion-board REST surface: topics, articles,
// comments, and users, routed with method+pattern ServeMux handlers.
package api

import (
	"context"
	"net/http"

	"newsboard/internal/model"
	"newsboard/internal/store"
)

// Store is the persistence surface the handlers depend on. *store.Store
// satisfies it; tests substitute stubs.
type Store interface {
	ListTopics(ctx context.Context) ([]model.Topic, error)
	CreateTopic(ctx context.Context, slug string, description *string) (*model.Topic, error)

	ListArticles(ctx context.Context, q *store.ListQuery) ([]model.Article, *int, error)
	GetArticle(ctx context.Context, id int) (*model.Article, error)
	CreateArticle(ctx context.Context, in store.CreateArticleInput) (*model.Article, error)
	IncrementArticleVotes(ctx context.Context, id int, delta int) (*model.Article, error)
	DeleteArticle(ctx context.Context, id int) error

	ListArticleComments(ctx context.Context, articleID int, w *store.ListWindow) ([]model.Comment, error)
	CreateComment(ctx context.Context, articleID int, username string, body string) (*model.Comment, error)
	IncrementCommentVotes(ctx context.Context, id int, delta int) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int) error

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
}

// ListingMetrics records the page sizes served by list endpoints.
// *observability.HTTPMetrics satisfies it.
type ListingMetrics interface {
	RecordListingRows(ctx context.Context, rows int64, entity string)
}

// Handler holds the route handlers for the /api surface.
type Handler struct {
	store   Store
	metrics ListingMetrics
}

// Option configures a Handler.
type Option func(*Handler)

// WithListingMetrics enables per-entity row-count metrics on list endpoints.
func WithListingMetrics(m ListingMetrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// NewHandler creates the API handler over a store.
func NewHandler(st Store, opts ...Option) *Handler {
	h := &Handler{store: st}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) recordRows(ctx context.Context, rows int, entity string) {
	if h.metrics != nil {
		h.metrics.RecordListingRows(ctx, int64(rows), entity)
	}
}

// Routes returns the /api route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api", h.getEndpointsInfo)

	mux.HandleFunc("GET /api/topics", h.listTopics)
	mux.HandleFunc("POST /api/topics", h.createTopic)
	mux.HandleFunc("GET /api/topics/{topic}/articles", h.listTopicArticles)

	mux.HandleFunc("GET /api/users", h.listUsers)
	mux.HandleFunc("GET /api/users/{username}", h.getUser)

	mux.HandleFunc("GET /api/articles", h.listArticles)
	mux.HandleFunc("POST /api/articles", h.createArticle)
	mux.HandleFunc("GET /api/articles/{article_id}", h.getArticle)
	mux.HandleFunc("PATCH /api/articles/{article_id}", h.patchArticle)
	mux.HandleFunc("DELETE /api/articles/{article_id}", h.deleteArticle)

	mux.HandleFunc("GET /api/articles/{article_id}/comments", h.listArticleComments)
	mux.HandleFunc("POST /api/articles/{article_id}/comments", h.createComment)

	mux.HandleFunc("PATCH /api/comments/{comment_id}", h.patchComment)
	mux.HandleFunc("DELETE /api/comments/{comment_id}", h.deleteComment)

	return mux
}
