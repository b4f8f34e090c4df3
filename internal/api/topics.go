package api

import (
	"net/http"

	"newsboard/internal/apperr"
	"newsboard/internal/model"
	"newsboard/internal/store"
)

func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.ListTopics(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]model.Topic{"topics": topics})
}

type createTopicBody struct {
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func (h *Handler) createTopic(w http.ResponseWriter, r *http.Request) {
	var body createTopicBody
	if err := decodeStrict(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.Slug == "" {
		writeError(w, r, apperr.BadRequest("slug is required"))
		return
	}

	topic, err := h.store.CreateTopic(r.Context(), body.Slug, body.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*model.Topic{"topic": topic})
}

// listTopicArticles serves the topic-scoped listing. Same filter, sort, and
// pagination contract as the article listing, with the topic fixed by the
// path.
func (h *Handler) listTopicArticles(w http.ResponseWriter, r *http.Request) {
	q, err := store.ParseTopicArticlesQuery(r.PathValue("topic"), r.URL.Query())
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
