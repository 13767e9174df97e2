package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginSuccess(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	result := decode[LoginResponse](t, resp)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, testAdminEmail, result.User.Email)
	assert.Equal(t, "admin", result.User.Role)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp))
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    "nobody@framelight.example",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp))
}

func TestAuth_CurrentUser(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.login(t)

	resp := ts.api.Get("/api/v1/auth/me", token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, testAdminEmail, decode[UserResponse](t, resp).Email)

	resp = ts.api.Get("/api/v1/auth/me")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Get("/api/v1/auth/me", "Authorization: Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Get("/api/v1/auth/me", "Authorization: Basic abc")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestContact_Validation(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/contact", map[string]any{
		"name":         "Sam Okafor",
		"email":        "not-an-email",
		"phone":        "555-0100",
		"inquiry_type": "project_inquiry",
		"message":      "We would like to talk.",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp))
}

func TestContact_MissingPhone(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/contact", map[string]any{
		"name":         "Sam Okafor",
		"email":        "sam@example.com",
		"inquiry_type": "project_inquiry",
		"message":      "We would like to talk.",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp))
}

func TestHealth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "healthy", decode[HealthResponse](t, resp).Status)
}
