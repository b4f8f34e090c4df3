package api

import "net/http"

// endpointInfo documents one route for the /api inventory.
type endpointInfo struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	Body        []string `json:"body,omitempty"`
}

var endpointsInfo = map[string]endpointInfo{
	"GET /api": {
		Description: "serves a description of all available endpoints",
	},
	"GET /api/topics": {
		Description: "serves a list of all topics",
	},
	"POST /api/topics": {
		Description: "creates a topic and serves it back",
		Body:        []string{"slug", "description"},
	},
	"GET /api/topics/:topic/articles": {
		Description: "serves the articles of one topic, sorted and paginated like the article listing",
		Queries:     []string{"sort_by", "order", "limit", "p"},
	},
	"GET /api/users": {
		Description: "serves a list of all users",
	},
	"GET /api/users/:username": {
		Description: "serves one user by username",
	},
	"GET /api/articles": {
		Description: "serves a list of articles; total_count is included when p is given",
		Queries:     []string{"topic", "sort_by", "order", "limit", "p"},
	},
	"POST /api/articles": {
		Description: "creates an article and serves it back",
		Body:        []string{"author", "title", "body", "topic", "article_img_url"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves one article with its comment_count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adds inc_votes to an article's votes and serves the updated article",
		Body:        []string{"inc_votes"},
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article and all of its comments",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves the comments of one article",
		Queries:     []string{"limit", "p"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "creates a comment on an article and serves it back",
		Body:        []string{"username", "body"},
	},
	"PATCH /api/comments/:comment_id": {
		Description: "adds inc_votes to a comment's votes and serves the updated comment",
		Body:        []string{"inc_votes"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment",
	},
}

func (h *Handler) getEndpointsInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]map[string]endpointInfo{"endpoints": endpointsInfo})
}
