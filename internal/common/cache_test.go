package common

import "testing"

func setupTestCache(t *testing.T) (*Cache, func()) {
	t.Helper()

	cache := NewCache(0, 0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestCache(t)
	defer cleanup()

	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_DeletePrefix(t *testing.T) {
	cache, cleanup := setupTestCache(t)
	defer cleanup()

	cache.Set(CacheKeyPosts(10, 0), "first page")
	cache.Set(CacheKeyPosts(10, 10), "second page")
	cache.Set(CacheKeyPost(42), "single post")

	cache.DeletePrefix(CacheKeyPostsPrefix)

	if _, ok := cache.Get(CacheKeyPosts(10, 0)); ok {
		t.Error("expected first page to be dropped")
	}

	if _, ok := cache.Get(CacheKeyPosts(10, 10)); ok {
		t.Error("expected second page to be dropped")
	}

	if _, ok := cache.Get(CacheKeyPost(42)); !ok {
		t.Error("expected single post entry to survive")
	}
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestCache(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}

func TestCacheKeys(t *testing.T) {
	if got := CacheKeyPost(42); got != "post:42" {
		t.Errorf("unexpected key: %s", got)
	}

	if got := CacheKeyPostBySlug("hello-world"); got != "post_by_slug:hello-world" {
		t.Errorf("unexpected key: %s", got)
	}

	if got := CacheKeyPosts(10, 0); got != "posts:10:0" {
		t.Errorf("unexpected key: %s", got)
	}
}
