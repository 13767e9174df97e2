package cdn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelightapp/framelight-server/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Upload(t *testing.T) {
	var gotAuth string
	var gotPublicID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotPublicID = r.FormValue("public_id")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte("fake-jpeg-bytes"), data)

		fmt.Fprintf(w, `{"url":"https://cdn.example.com/%s.jpg","public_id":"%s"}`, gotPublicID, gotPublicID)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, APIKey: "secret"}, discardLogger())
	require.NoError(t, err)

	result, err := client.Upload(context.Background(), []byte("fake-jpeg-bytes"), "films")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.True(t, strings.HasPrefix(gotPublicID, "films/"))
	assert.Equal(t, gotPublicID, result.PublicID)
	assert.Contains(t, result.URL, gotPublicID)
}

func TestClient_Upload_UniquePublicIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		id := r.FormValue("public_id")
		fmt.Fprintf(w, `{"url":"https://cdn.example.com/%s.jpg","public_id":"%s"}`, id, id)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	first, err := client.Upload(context.Background(), []byte("a"), "banners")
	require.NoError(t, err)
	second, err := client.Upload(context.Background(), []byte("a"), "banners")
	require.NoError(t, err)

	assert.NotEqual(t, first.PublicID, second.PublicID)
}

func TestClient_Upload_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), []byte("a"), "films")
	require.Error(t, err)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.CodeUpstream, domainErr.Code)
}

func TestClient_Upload_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"url":""}`)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), []byte("a"), "films")
	require.Error(t, err)
}

func TestClient_Delete(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	err = client.Delete(context.Background(), "films/abc-123")
	require.NoError(t, err)
	assert.Equal(t, "/assets/films%2Fabc-123", gotPath)
}

func TestClient_Delete_UnknownAssetIsFine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL}, discardLogger())
	require.NoError(t, err)

	require.NoError(t, client.Delete(context.Background(), "films/ghost"))
}

func TestClient_Delete_EmptyPublicID(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:1"}, discardLogger())
	require.NoError(t, err)

	// No public ID means nothing to do, not a network call.
	require.NoError(t, client.Delete(context.Background(), ""))
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{}, discardLogger())
	require.Error(t, err)
}
