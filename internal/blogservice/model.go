package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/draftwerk/studiohub/internal/common"
)

var (
	ErrRecordNotFound = common.ErrRecordNotFound
	ErrDuplicateSlug  = errors.New("duplicate slug")
)

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

// UniqueViolationError is a helper function to check if the error is a unique
// constraint error on the named constraint.
func UniqueViolationError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *PostModel) insert(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (slug, title, content, keywords, author_id, author_name, author_role, author_photo_url, cover_url, word_count, reading_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at, version`

	args := []any{
		post.Slug,
		post.Title,
		post.Content,
		pq.Array(post.Keywords),
		post.AuthorID,
		post.Author.Name,
		post.Author.Role,
		post.Author.PhotoURL,
		post.CoverURL,
		post.WordCount,
		post.ReadingTime,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt, &post.Version)
	if err != nil {
		switch {
		case UniqueViolationError(err, "posts_slug_key"):
			return ErrDuplicateSlug
		default:
			return err
		}
	}

	return nil
}

func (m *PostModel) getBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `
		SELECT id, slug, title, content, keywords, author_id, author_name, author_role, author_photo_url, cover_url, word_count, reading_time, created_at, updated_at, version
		FROM posts
		WHERE slug = $1`

	return m.scanPost(m.db.QueryRowContext(ctx, query, slug))
}

func (m *PostModel) getByID(ctx context.Context, id int) (*Post, error) {
	query := `
		SELECT id, slug, title, content, keywords, author_id, author_name, author_role, author_photo_url, cover_url, word_count, reading_time, created_at, updated_at, version
		FROM posts
		WHERE id = $1`

	return m.scanPost(m.db.QueryRowContext(ctx, query, id))
}

func (m *PostModel) scanPost(row *sql.Row) (*Post, error) {
	var post Post
	err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Content,
		pq.Array(&post.Keywords),
		&post.AuthorID,
		&post.Author.Name,
		&post.Author.Role,
		&post.Author.PhotoURL,
		&post.CoverURL,
		&post.WordCount,
		&post.ReadingTime,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &post, nil
}

// update replaces the whole record. The version guard turns a stale write into
// a not-found result instead of silently clobbering a concurrent edit.
func (m *PostModel) update(ctx context.Context, post *Post) error {
	query := `
		UPDATE posts
		SET slug = $1, title = $2, content = $3, keywords = $4, author_id = $5, author_name = $6, author_role = $7, author_photo_url = $8, cover_url = $9, word_count = $10, reading_time = $11, updated_at = now(), version = version + 1
		WHERE id = $12 AND version = $13
		RETURNING version, created_at, updated_at`

	args := []any{
		post.Slug,
		post.Title,
		post.Content,
		pq.Array(post.Keywords),
		post.AuthorID,
		post.Author.Name,
		post.Author.Role,
		post.Author.PhotoURL,
		post.CoverURL,
		post.WordCount,
		post.ReadingTime,
		post.ID,
		post.Version,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&post.Version, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		switch {
		case UniqueViolationError(err, "posts_slug_key"):
			return ErrDuplicateSlug
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *PostModel) delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM posts
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// getPosts returns posts sorted by created_at descending with limit and offset.
func (m *PostModel) getPosts(ctx context.Context, limit, offset int) ([]Post, error) {
	query := `
		SELECT id, slug, title, content, keywords, author_id, author_name, author_role, author_photo_url, cover_url, word_count, reading_time, created_at, updated_at, version
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	return m.queryPosts(ctx, query, limit, offset)
}

func (m *PostModel) getPostsByTitle(ctx context.Context, title string, limit, offset int) ([]Post, error) {
	query := `
		SELECT id, slug, title, content, keywords, author_id, author_name, author_role, author_photo_url, cover_url, word_count, reading_time, created_at, updated_at, version
		FROM posts
		WHERE title ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return m.queryPosts(ctx, query, "%"+title+"%", limit, offset)
}

func (m *PostModel) queryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(
			&post.ID,
			&post.Slug,
			&post.Title,
			&post.Content,
			pq.Array(&post.Keywords),
			&post.AuthorID,
			&post.Author.Name,
			&post.Author.Role,
			&post.Author.PhotoURL,
			&post.CoverURL,
			&post.WordCount,
			&post.ReadingTime,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.Version,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
