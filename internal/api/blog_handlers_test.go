package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogBody(title string) map[string]any {
	return map[string]any{
		"title":             title,
		"short_description": "Location lessons.",
		"content":           "<p>Shooting on location taught us a few things about weather.</p>",
		"thumbnail_image":   map[string]any{"url": "https://cdn.example.com/blog/bts-thumb.jpg", "alt": "Crew on set"},
		"banner_image":      map[string]any{"url": "https://cdn.example.com/blog/bts-banner.jpg"},
		"category_ids":      []string{"category_news"},
		"author_id":         "author_abc",
	}
}

func TestBlogs_CreateValidation(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	body := blogBody("Behind the Scenes")
	delete(body, "author_id")

	resp := ts.api.Post("/api/v1/blogs", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp))

	body = blogBody("Behind the Scenes")
	body["category_ids"] = []string{}

	resp = ts.api.Post("/api/v1/blogs", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp))

	body = blogBody("Behind the Scenes")
	body["banner_image"] = map[string]any{"alt": "missing URL"}

	resp = ts.api.Post("/api/v1/blogs", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp))
}

func TestBlogs_PublishedFilter(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	published := blogBody("Published Post")
	published["published"] = true
	resp := ts.api.Post("/api/v1/blogs", token, published)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = ts.api.Post("/api/v1/blogs", token, blogBody("Draft Post"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Get("/api/v1/blogs?published=true")
	require.Equal(t, http.StatusOK, resp.Code)
	listing := decode[ListBlogsResponse](t, resp)
	require.Len(t, listing.Blogs, 1)
	assert.Equal(t, "Published Post", listing.Blogs[0].Title)
	require.NotNil(t, listing.Blogs[0].PublishedAt)

	// Admin view without the filter sees drafts too.
	resp = ts.api.Get("/api/v1/blogs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[ListBlogsResponse](t, resp).Blogs, 2)
}

func TestBlogs_ExcludeSlugFilter(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Post("/api/v1/blogs", token, blogBody("First Post"))
	require.Equal(t, http.StatusCreated, resp.Code)
	resp = ts.api.Post("/api/v1/blogs", token, blogBody("Second Post"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Get("/api/v1/blogs?exclude=first-post")
	require.Equal(t, http.StatusOK, resp.Code)
	listing := decode[ListBlogsResponse](t, resp)
	require.Len(t, listing.Blogs, 1)
	assert.Equal(t, "Second Post", listing.Blogs[0].Title)
}

func TestBlogs_GetBySlug(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Post("/api/v1/blogs", token, blogBody("Behind the Scenes"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Get("/api/v1/blogs/slug/behind-the-scenes")
	require.Equal(t, http.StatusOK, resp.Code)
	post := decode[BlogResponse](t, resp)
	assert.Equal(t, "Behind the Scenes", post.Title)
	assert.Positive(t, post.ReadTime)
}

func TestBlogs_DuplicateSlugConflict(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Post("/api/v1/blogs", token, blogBody("Behind the Scenes"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Post("/api/v1/blogs", token, blogBody("Behind the Scenes"))
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "ALREADY_EXISTS", decodeError(t, resp))
}

func TestBlogs_MutationsRequireAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/blogs", blogBody("Behind the Scenes"))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Put("/api/v1/blogs/blog_x", blogBody("Behind the Scenes"))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Delete("/api/v1/blogs/blog_x")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
