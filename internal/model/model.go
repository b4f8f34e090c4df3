// Package model defines the persisted entities and their wire shapes.
package model

import "time"

// Topic is a discussion category. Slug is the primary identifier.
type Topic struct {
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// Article is a post under a topic. CommentCount is derived at read time from
// the live comment rows and is never stored.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	ArticleImgURL string    `json:"article_img_url"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	CommentCount  int       `json:"comment_count"`
}

// Comment is a reply attached to an article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// User is a registered author. Read-only through the API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
