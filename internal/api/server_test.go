package api

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/framelightapp/framelight-server/internal/auth"
	"github.com/framelightapp/framelight-server/internal/cdn"
	"github.com/framelightapp/framelight-server/internal/config"
	"github.com/framelightapp/framelight-server/internal/mail"
	"github.com/framelightapp/framelight-server/internal/ratelimit"
	"github.com/framelightapp/framelight-server/internal/search"
	"github.com/framelightapp/framelight-server/internal/service"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details,omitempty"`
	} `json:"error"`
}

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api humatest.TestAPI
}

const (
	testAdminEmail    = "admin@framelight.example"
	testAdminPassword = "correct horse battery"
)

// setupTestServer creates a fully wired server over temp storage. The
// CDN stub echoes uploads; mail points at a closed port.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	idx, err := search.NewIndex(search.Options{DataPath: t.TempDir(), Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	tokens, err := auth.NewTokenService(hex.EncodeToString(key), time.Hour)
	require.NoError(t, err)

	cdnStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		require.NoError(t, r.ParseMultipartForm(32<<20))
		publicID := r.FormValue("public_id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/` + publicID + `.jpg","public_id":"` + publicID + `"}`))
	}))
	t.Cleanup(cdnStub.Close)

	cdnClient, err := cdn.New(cdn.Config{BaseURL: cdnStub.URL, APIKey: "test-key"}, logger)
	require.NoError(t, err)

	mailer, err := mail.New(mail.Config{
		Host: "127.0.0.1",
		Port: 1,
		From: "site@framelight.example",
		To:   "inbox@framelight.example",
	}, logger)
	require.NoError(t, err)

	validator := validation.New()
	searchSvc := service.NewSearchService(idx, st, logger)

	authSvc := service.NewAuthService(st, tokens, ratelimit.New(100, 100), validator, logger)
	require.NoError(t, authSvc.SeedAdmins(context.Background(), []config.AdminAccount{
		{Email: testAdminEmail, Name: "Admin", Password: testAdminPassword},
	}))

	services := &Services{
		Auth:     authSvc,
		Film:     service.NewFilmService(st, searchSvc, validator, logger),
		Series:   service.NewSeriesService(st, searchSvc, validator, logger),
		Blog:     service.NewBlogService(st, searchSvc, validator, logger),
		Category: service.NewCategoryService(st, validator, logger),
		Tag:      service.NewTagService(st, validator, logger),
		Author:   service.NewAuthorService(st, validator, logger),
		Banner:   service.NewBannerService(st, validator, logger),
		Upload:   service.NewUploadService(cdnClient, logger),
		Contact:  service.NewContactService(mailer, validator, logger),
		Search:   searchSvc,
	}

	s := NewServer(Options{
		Store:       st,
		Services:    services,
		Logger:      logger,
		CORSOrigins: []string{"*"},
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

// login signs the seeded admin in and returns the Authorization header
// value.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, resp.Code, "login failed: %s", resp.Body.String())

	var envelope testEnvelope[LoginResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	return "Authorization: Bearer " + envelope.Data.Token
}

// decode unwraps the envelope data from a recorded response.
func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope testEnvelope[T]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope), "body: %s", resp.Body.String())
	return envelope.Data
}

// decodeError unwraps the envelope error code from a recorded response.
func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope testEnvelope[any]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope), "body: %s", resp.Body.String())
	require.NotNil(t, envelope.Error, "expected error envelope, got: %s", resp.Body.String())
	return envelope.Error.Code
}
