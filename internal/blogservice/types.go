package blogservice

import (
	"database/sql"
	"time"

	"github.com/draftwerk/studiohub/internal/common"
)

// Author is an entry of the fixed in-house roster. Posts keep a denormalized
// snapshot of the author taken at write time, so later roster edits never
// affect already-published posts.
type Author struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
}

type Post struct {
	ID    int    `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	// Content is the HTML produced by the authoring editor.
	Content     string    `json:"content"`
	Keywords    []string  `json:"keywords"`
	AuthorID    int       `json:"author_id"`
	Author      Author    `json:"author"`
	CoverURL    string    `json:"cover_url"`
	WordCount   int       `json:"word_count"`
	ReadingTime int       `json:"reading_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

type PostModel struct {
	db *sql.DB
}

type BlogService struct {
	m *PostModel
	c *common.Cache
}
