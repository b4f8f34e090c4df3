package api

import (
	"net/http"

	"newsboard/internal/apperr"
	"newsboard/internal/model"
	"newsboard/internal/store"
)

func (h *Handler) listArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	window, err := store.ParseListWindow(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	comments, err := h.store.ListArticleComments(r.Context(), articleID, window)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.recordRows(r.Context(), len(comments), "comments")
	writeJSON(w, http.StatusOK, map[string][]model.Comment{"comments": comments})
}

type createCommentBody struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body createCommentBody
	if err := decodeStrict(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.Username == "" || body.Body == "" {
		writeError(w, r, apperr.BadRequest("username and body are required"))
		return
	}

	comment, err := h.store.CreateComment(r.Context(), articleID, body.Username, body.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*model.Comment{"comment": comment})
}

func (h *Handler) patchComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
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

	comment, err := h.store.IncrementCommentVotes(r.Context(), id, *body.IncVotes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*model.Comment{"comment": comment})
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.store.DeleteComment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
