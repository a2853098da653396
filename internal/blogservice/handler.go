package blogservice

import (
	"context"
	"database/sql"

	"github.com/draftwerk/studiohub/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newPostModel(db), c: c}
}

type CreatePostRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	AuthorID int      `json:"author_id"`
	CoverURL string   `json:"cover_url"`
}

// CreatePost stores a new post. An empty slug is derived from the title; a
// caller-supplied slug (customized in the authoring form) is kept as-is. The
// word count and reading time are computed at save time and stored with the
// author snapshot.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	if req.Slug == "" {
		req.Slug = Slugify(req.Title)
	}

	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateSlug(v, req.Slug)
	validateContent(v, req.Content)
	validateAuthor(v, req.AuthorID)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	author, _ := AuthorByID(req.AuthorID)
	content := SanitizeHTML(req.Content)
	words := CountWords(content)

	post := &Post{
		Slug:        req.Slug,
		Title:       req.Title,
		Content:     content,
		Keywords:    req.Keywords,
		AuthorID:    req.AuthorID,
		Author:      author,
		CoverURL:    req.CoverURL,
		WordCount:   words,
		ReadingTime: ComposeReadingTime(words),
	}

	if err := s.m.insert(ctx, post); err != nil {
		return nil, err
	}

	s.c.DeletePrefix(common.CacheKeyPostsPrefix)

	return post, nil
}

// GetPostBySlug returns a post by its slug, read through the cache.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	v := common.NewValidator()
	validateSlug(v, slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyPostBySlug(slug)); ok {
		return cached.(*Post), nil
	}

	post, err := s.m.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.backfillReadingTime(post)
	s.c.Set(common.CacheKeyPostBySlug(slug), post)

	return post, nil
}

// GetPostByID returns a post by its numeric ID, read through the cache.
func (s *BlogService) GetPostByID(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyPost(id)); ok {
		return cached.(*Post), nil
	}

	post, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.backfillReadingTime(post)
	s.c.Set(common.CacheKeyPost(id), post)

	return post, nil
}

// UpdatePost replaces the whole record. The slug is taken verbatim from the
// request: the edit flow deliberately does not re-derive it from the title so
// a customized slug survives later edits.
func (s *BlogService) UpdatePost(ctx context.Context, post *Post) error {
	v := common.NewValidator()
	validateInt(v, post.ID, "id")
	validateTitle(v, post.Title)
	validateSlug(v, post.Slug)
	validateContent(v, post.Content)
	validateAuthor(v, post.AuthorID)
	if !v.Valid() {
		return v.ValidationError()
	}

	author, _ := AuthorByID(post.AuthorID)
	post.Author = author
	post.Content = SanitizeHTML(post.Content)
	post.WordCount = CountWords(post.Content)
	post.ReadingTime = ComposeReadingTime(post.WordCount)

	if err := s.m.update(ctx, post); err != nil {
		return err
	}

	s.invalidate(post)

	return nil
}

// DeletePost removes a post by ID.
func (s *BlogService) DeletePost(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if post, err := s.m.getByID(ctx, id); err == nil {
		s.invalidate(post)
	}

	return s.m.delete(ctx, id)
}

// resolveLimitOffset applies the list defaults: limit 10 and offset 0 when a
// parameter is absent or out of range.
func resolveLimitOffset(limit, offset *int) (int, int) {
	l, o := 10, 0

	if limit != nil && *limit > 0 {
		l = *limit
	}

	if offset != nil && *offset > 0 {
		o = *offset
	}

	return l, o
}

// GetPosts returns all posts newest-first, read through the list cache.
func (s *BlogService) GetPosts(ctx context.Context, limit, offset *int) ([]Post, error) {
	l, o := resolveLimitOffset(limit, offset)

	key := common.CacheKeyPosts(l, o)
	if cached, ok := s.c.Get(key); ok {
		return cached.([]Post), nil
	}

	posts, err := s.m.getPosts(ctx, l, o)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, posts)

	return posts, nil
}

// SearchPosts returns posts whose title contains the query string. Search
// results are not cached.
func (s *BlogService) SearchPosts(ctx context.Context, title string, limit, offset *int) ([]Post, error) {
	v := common.NewValidator()
	validateTitle(v, title)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	l, o := resolveLimitOffset(limit, offset)

	return s.m.getPostsByTitle(ctx, title, l, o)
}

// backfillReadingTime covers rows written before reading time was stored. The
// render-side 200 wpm estimate is the documented fallback.
func (s *BlogService) backfillReadingTime(post *Post) {
	if post.ReadingTime < 1 {
		post.ReadingTime = EstimateReadingTime(post.Content)
	}
}

func (s *BlogService) invalidate(post *Post) {
	s.c.Delete(common.CacheKeyPost(post.ID))
	s.c.Delete(common.CacheKeyPostBySlug(post.Slug))
	s.c.DeletePrefix(common.CacheKeyPostsPrefix)
}
