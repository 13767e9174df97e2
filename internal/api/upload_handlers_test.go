package api

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUploads_RequireAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/uploads/film",
		"Content-Type: image/jpeg",
		bytes.NewReader(testJPEG(t, 100, 100)))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUploads_PosterUpload(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Post("/api/v1/uploads/film",
		token,
		"Content-Type: image/jpeg",
		bytes.NewReader(testJPEG(t, 800, 1200)))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	uploaded := decode[UploadImageResponse](t, resp)
	assert.Contains(t, uploaded.PublicID, "films/")
	assert.Equal(t, 500, uploaded.Width)
	assert.Equal(t, 750, uploaded.Height)
	assert.NotEmpty(t, uploaded.URL)
}

func TestUploads_GarbageRejected(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Post("/api/v1/uploads/film",
		token,
		"Content-Type: image/jpeg",
		bytes.NewReader([]byte("not an image")))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp))
}

func TestUploads_Delete(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Delete("/api/v1/uploads", token, map[string]any{
		"public_id": "films/abc-123",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestSearch_FindsIndexedFilm(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Post("/api/v1/films", token, filmBody("The Long Night"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Get("/api/v1/search?q=long+night")
	require.Equal(t, http.StatusOK, resp.Code)

	result := decode[SearchResponse](t, resp)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "The Long Night", result.Hits[0].Title)
	assert.Equal(t, "film", result.Hits[0].Type)
}
