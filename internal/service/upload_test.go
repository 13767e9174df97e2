package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelightapp/framelight-server/internal/cdn"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/media/images"
)

func newUploadService(t *testing.T, handler http.HandlerFunc) *UploadService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := cdn.New(cdn.Config{BaseURL: srv.URL, APIKey: "test-key"}, logger)
	require.NoError(t, err)

	return NewUploadService(client, logger)
}

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

func TestUploadService_Upload(t *testing.T) {
	var gotPublicID string
	svc := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotPublicID = r.FormValue("public_id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/` + gotPublicID + `.jpg","public_id":"` + gotPublicID + `"}`))
	})

	result, err := svc.Upload(context.Background(), testJPEG(t, 800, 1200), images.KindFilm)
	require.NoError(t, err)

	assert.Contains(t, gotPublicID, "films/")
	assert.Equal(t, gotPublicID, result.PublicID)
	assert.Equal(t, 500, result.Width)
	assert.Equal(t, 750, result.Height)
	assert.NotEmpty(t, result.BlurHash)
}

func TestUploadService_Upload_RejectsGarbage(t *testing.T) {
	svc := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("CDN should not be called for an undecodable upload")
	})

	_, err := svc.Upload(context.Background(), []byte("not an image"), images.KindFilm)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestUploadService_Upload_RejectsUnknownKind(t *testing.T) {
	svc := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("CDN should not be called for an unknown kind")
	})

	_, err := svc.Upload(context.Background(), testJPEG(t, 100, 100), images.Kind("avatar-xxl"))
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestUploadService_Upload_UpstreamFailure(t *testing.T) {
	svc := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage full", http.StatusInternalServerError)
	})

	_, err := svc.Upload(context.Background(), testJPEG(t, 100, 100), images.KindThumbnail)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeUpstream, derr.Code)
}

func TestUploadService_Delete(t *testing.T) {
	var deleted string
	svc := newUploadService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Delete(context.Background(), "films/abc-123"))
	assert.Equal(t, "/assets/films%2Fabc-123", deleted)

	err := svc.Delete(context.Background(), "")
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}
