package blogservice

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/common"
)

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM posts")
		if err != nil {
			return err
		}

		cache.Flush()

		return nil
	}

	return NewBlogService(db, cache), db, cleanup
}

func createTestPost(db *sql.DB, slug string) (*int, *int, error) {
	query := `
		INSERT INTO posts (slug, title, content, keywords, author_id, author_name, author_role, author_photo_url, cover_url, word_count, reading_time)
		VALUES ($1, 'Test Post', '<p>This is a test post.</p>', '{}', 1, 'Maya Ellison', 'Creative Director', '', '', 5, 1)
		RETURNING id, version`

	var id, version int
	err := db.QueryRow(query, slug).Scan(&id, &version)
	if err != nil {
		return nil, nil, err
	}

	return &id, &version, nil
}

func TestCreatePost(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		req         *CreatePostRequest
		expectedErr error
	}{
		{
			name: "valid post derives slug from title",
			req: &CreatePostRequest{
				Title:    "My First Post",
				Content:  "<p>Hello there.</p>",
				AuthorID: 1,
			},
			expectedErr: nil,
		},
		{
			name: "custom slug kept",
			req: &CreatePostRequest{
				Title:    "Another Post",
				Slug:     "custom-slug",
				Content:  "<p>Hello again.</p>",
				AuthorID: 2,
			},
			expectedErr: nil,
		},
		{
			name: "missing title",
			req: &CreatePostRequest{
				Content:  "<p>Hello.</p>",
				AuthorID: 1,
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"title": "must be provided", "slug": "must be provided"}},
		},
		{
			name: "missing author",
			req: &CreatePostRequest{
				Title:   "My First Post",
				Content: "<p>Hello.</p>",
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"author_id": "must be selected"}},
		},
		{
			name: "author not on roster",
			req: &CreatePostRequest{
				Title:    "Roster Check",
				Content:  "<p>Hello.</p>",
				AuthorID: 99,
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"author_id": "is not on the author roster"}},
		},
		{
			name: "missing content",
			req: &CreatePostRequest{
				Title:    "No Content",
				AuthorID: 1,
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"content": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := s.CreatePost(context.Background(), tc.req)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			assert.NotZero(t, post.ID)
			if tc.req.Slug == "" {
				assert.Equal(t, Slugify(tc.req.Title), post.Slug)
			} else {
				assert.Equal(t, tc.req.Slug, post.Slug)
			}
		})
	}

	assert.NoError(t, cleanup())
}

func TestCreatePostMetadata(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	content := "<p>" + strings.Repeat("word ", 400) + "</p>"

	post, err := s.CreatePost(context.Background(), &CreatePostRequest{
		Title:    "My First Post",
		Content:  content,
		AuthorID: 1,
	})
	assert.NoError(t, err)

	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, 400, post.WordCount)
	// save path stores the 150 wpm figure
	assert.Equal(t, 3, post.ReadingTime)
	assert.Equal(t, "Maya Ellison", post.Author.Name)

	assert.NoError(t, cleanup())
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	_, _, err := createTestPost(db, "my-first-post")
	assert.NoError(t, err)

	_, err = s.CreatePost(context.Background(), &CreatePostRequest{
		Title:    "My First Post",
		Content:  "<p>Second body.</p>",
		AuthorID: 1,
	})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	var count int
	assert.NoError(t, db.QueryRow("SELECT count(*) FROM posts WHERE slug = 'my-first-post'").Scan(&count))
	assert.Equal(t, 1, count)

	assert.NoError(t, cleanup())
}

func TestGetPostBySlug(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	_, _, err := createTestPost(db, "test-post")
	assert.NoError(t, err)

	post, err := s.GetPostBySlug(context.Background(), "test-post")
	assert.NoError(t, err)
	assert.Equal(t, "Test Post", post.Title)

	_, err = s.GetPostBySlug(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, cleanup())
}

func TestUpdatePost(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	id, version, err := createTestPost(db, "test-post")
	assert.NoError(t, err)

	post := &Post{
		ID:       *id,
		Slug:     "test-post",
		Title:    "Test Post Updated",
		Content:  "<p>Updated body.</p>",
		AuthorID: 2,
		Version:  *version,
	}

	err = s.UpdatePost(context.Background(), post)
	assert.NoError(t, err)
	assert.Equal(t, *version+1, post.Version)
	assert.Equal(t, "Tomas Reiner", post.Author.Name)

	// a stale version must not overwrite the newer record
	stale := &Post{
		ID:       *id,
		Slug:     "test-post",
		Title:    "Stale Write",
		Content:  "<p>Old body.</p>",
		AuthorID: 1,
		Version:  *version,
	}
	err = s.UpdatePost(context.Background(), stale)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, cleanup())
}

func TestDeletePost(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	id, _, err := createTestPost(db, "test-post")
	assert.NoError(t, err)

	err = s.DeletePost(context.Background(), *id)
	assert.NoError(t, err)

	err = s.DeletePost(context.Background(), *id)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, cleanup())
}

func TestGetPosts(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	_, _, err := createTestPost(db, "first-post")
	assert.NoError(t, err)
	_, _, err = createTestPost(db, "second-post")
	assert.NoError(t, err)

	limit, offset := 10, 0
	posts, err := s.GetPosts(context.Background(), &limit, &offset)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	assert.NoError(t, cleanup())
}

// Absent limit and offset parameters fall back to the defaults instead of
// being dereferenced.
func TestGetPostsDefaultParams(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	_, _, err := createTestPost(db, "first-post")
	assert.NoError(t, err)

	posts, err := s.GetPosts(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)

	results, err := s.SearchPosts(context.Background(), "Test Post", nil, nil)
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	assert.NoError(t, cleanup())
}

// A fresh post shows up in the list even when an earlier list response was
// cached.
func TestGetPostsCacheInvalidation(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	_, _, err := createTestPost(db, "first-post")
	assert.NoError(t, err)

	posts, err := s.GetPosts(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)

	_, err = s.CreatePost(context.Background(), &CreatePostRequest{
		Title:    "Second Post",
		Content:  "<p>Another test post.</p>",
		AuthorID: 1,
	})
	assert.NoError(t, err)

	posts, err = s.GetPosts(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	assert.NoError(t, cleanup())
}
