package api

import (
	"net/http"

	"newsboard/internal/apperr"
	"newsboard/internal/model"
	"newsboard/internal/store"
)

type articlesEnvelope struct {
	Articles []model.Article `json:"articles"`
	// TotalCount is present iff the request paginated with p.
	TotalCount *int `json:"total_count,omitempty"`
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	q, err := store.ParseArticleListQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	articles, total, err := h.store.ListArticles(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.recordRows(r.Context(), len(articles), "articles")
	writeJSON(w, http.StatusOK, articlesEnvelope{Articles: articles, TotalCount: total})
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	article, err := h.store.GetArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*model.Article{"article": article})
}

type createArticleBody struct {
	Author        string  `json:"author"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Topic         string  `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var body createArticleBody
	if err := decodeStrict(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.Author == "" || body.Title == "" || body.Body == "" || body.Topic == "" {
		writeError(w, r, apperr.BadRequest("author, title, body and topic are required"))
		return
	}

	article, err := h.store.CreateArticle(r.Context(), store.CreateArticleInput{
		Author:        body.Author,
		Title:         body.Title,
		Body:          body.Body,
		Topic:         body.Topic,
		ArticleImgURL: body.ArticleImgURL,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*model.Article{"article": article})
}

type incVotesBody struct {
	IncVotes *int `json:"inc_votes"`
}

func (h *Handler) patchArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body incVotesBody
	if err := decodeStrict(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.IncVotes == nil {
		writeError(w, r, apperr.BadRequest("inc_votes is required"))
		return
	}

	article, err := h.store.IncrementArticleVotes(r.Context(), id, *body.IncVotes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*model.Article{"article": article})
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.store.DeleteArticle(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
