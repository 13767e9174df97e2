package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeOK(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	require.NoError(t, err)
}

func envelopeErr(t *testing.T, w http.ResponseWriter, status int, code, message string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]any{"code": code, "message": message},
	})
	require.NoError(t, err)
}

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsEmptyBaseURL(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestLogin_InstallsToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@framelight.example", body["email"])

		envelopeOK(t, w, map[string]any{
			"token":      "v4.local.abc",
			"expires_in": 3600,
			"user":       map[string]any{"id": "user-1", "role": "admin"},
		})
	})

	result, err := c.Login(context.Background(), "admin@framelight.example", "secret")
	require.NoError(t, err)

	assert.Equal(t, "v4.local.abc", result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, "v4.local.abc", c.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelopeErr(t, w, http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password")
	})

	_, err := c.Login(context.Background(), "admin@framelight.example", "wrong")
	require.Error(t, err)

	assert.True(t, IsUnauthorized(err))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Empty(t, c.Token())
}

func TestGetFilm_NotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelopeErr(t, w, http.StatusNotFound, CodeNotFound, "Film not found")
	})

	_, err := c.GetFilm(context.Background(), "film-missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestCreateFilm_SendsToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer v4.local.abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req FilmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "The Long Night", req.Title)

		envelopeOK(t, w, Film{ID: "film-1", Title: req.Title, Slug: "the-long-night"})
	})
	c.SetToken("v4.local.abc")

	film, err := c.CreateFilm(context.Background(), FilmRequest{Title: "The Long Night"})
	require.NoError(t, err)
	assert.Equal(t, "film-1", film.ID)
	assert.Equal(t, "the-long-night", film.Slug)
}

func TestCreateFilm_DuplicateSlug(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		envelopeErr(t, w, http.StatusConflict, CodeAlreadyExists, "Film with this slug already exists")
	})

	_, err := c.CreateFilm(context.Background(), FilmRequest{Title: "The Long Night"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestListBlogs_QueryEncoding(t *testing.T) {
	published := true
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "5", query.Get("limit"))
		assert.Equal(t, "true", query.Get("published"))
		assert.Equal(t, []string{"category_news", "category_press"}, query["categories"])
		assert.Equal(t, "first-post", query.Get("exclude"))

		envelopeOK(t, w, BlogPage{Pagination: Pagination{Total: 0, Page: 2, Limit: 5}})
	})

	page, err := c.ListBlogs(context.Background(), BlogListOptions{
		Page:       2,
		Limit:      5,
		Published:  &published,
		Categories: []string{"category_news", "category_press"},
		Exclude:    "first-post",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.Page)
}

func TestListFilms_Search(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sunrise", r.URL.Query().Get("search"))
		envelopeOK(t, w, FilmPage{
			Films:      []Film{{ID: "film-1", Slug: "sunrise-valley"}},
			Pagination: Pagination{Total: 1, Page: 1, Limit: 10, Pages: 1},
		})
	})

	page, err := c.ListFilms(context.Background(), ListOptions{Search: "sunrise"})
	require.NoError(t, err)
	require.Len(t, page.Films, 1)
	assert.Equal(t, "sunrise-valley", page.Films[0].Slug)
}

func TestUploadImage_RawBody(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0}
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/uploads/film", r.URL.Path)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

		envelopeOK(t, w, Upload{URL: "https://cdn.example/a.jpg", PublicID: "films/abc", Width: 500, Height: 750})
	})
	c.SetToken("v4.local.abc")

	upload, err := c.UploadImage(context.Background(), "film", "image/jpeg", payload)
	require.NoError(t, err)
	assert.Equal(t, "films/abc", upload.PublicID)
	assert.Equal(t, 500, upload.Width)
}

func TestDeleteUpload_SendsPublicID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/v1/uploads", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "films/abc", body["public_id"])

		envelopeOK(t, w, map[string]string{"message": "Image deleted"})
	})
	c.SetToken("v4.local.abc")

	require.NoError(t, c.DeleteUpload(context.Background(), "films/abc"))
}

func TestSearch_DecodesHits(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "night", query.Get("q"))
		assert.Equal(t, []string{"film", "blog"}, query["types"])
		assert.Equal(t, "relevance", query.Get("sort"))

		envelopeOK(t, w, SearchResult{
			Query: "night",
			Total: 1,
			Hits:  []SearchHit{{ID: "film-1", Type: "film", Slug: "the-long-night"}},
		})
	})

	result, err := c.Search(context.Background(), "night", SearchOptions{
		Types:  []string{"film", "blog"},
		SortBy: "relevance",
	})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "the-long-night", result.Hits[0].Slug)
}

func TestSend_NonEnvelopeResponse(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	})

	_, err := c.Health(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, CodeInternal, apiErr.Code)
}

func TestSend_ValidationFieldDetails(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"VALIDATION","message":"Validation failed","details":{"title":"is required","release_year":"must be 1888 or greater"}}}`))
	})

	_, err := c.CreateFilm(context.Background(), FilmRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	fields := apiErr.FieldErrors()
	require.NotNil(t, fields)
	assert.Equal(t, "is required", fields["title"])
	assert.Equal(t, "must be 1888 or greater", fields["release_year"])
	assert.Contains(t, apiErr.Error(), "title is required")
}

func TestSend_ValidationListDetails(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"VALIDATION","message":"Validation failed","details":["expected required property title to be present"]}}`))
	})

	_, err := c.CreateFilm(context.Background(), FilmRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Nil(t, apiErr.FieldErrors())
	assert.Contains(t, apiErr.Error(), "expected required property title to be present")
}
