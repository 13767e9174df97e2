package service

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelightapp/framelight-server/internal/auth"
	"github.com/framelightapp/framelight-server/internal/config"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/ratelimit"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	env := newTestEnv(t)

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	tokens, err := auth.NewTokenService(hex.EncodeToString(key), time.Hour)
	require.NoError(t, err)

	// Generous limiter so only the throttling test trips it.
	limiter := ratelimit.New(100, 100)

	return NewAuthService(env.store, tokens, limiter, env.validator, env.logger)
}

func seedOneAdmin(t *testing.T, svc *AuthService) {
	t.Helper()
	err := svc.SeedAdmins(context.Background(), []config.AdminAccount{
		{Email: "admin@framelight.example", Name: "Admin", Password: "correct horse battery"},
	})
	require.NoError(t, err)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@framelight.example",
		Password: "correct horse battery",
	}, "10.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, "admin@framelight.example", result.User.Email)
	assert.Empty(t, result.User.PasswordHash)
}

func TestAuthService_LoginEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@Framelight.example",
		Password: "correct horse battery",
	}, "10.0.0.1")
	require.NoError(t, err)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@framelight.example",
		Password: "wrong",
	}, "10.0.0.1")

	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeInvalidCredentials, derr.Code)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@framelight.example",
		Password: "whatever",
	}, "10.0.0.1")

	// Same error as a wrong password so the endpoint doesn't confirm
	// which emails exist.
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeInvalidCredentials, derr.Code)
}

func TestAuthService_LoginThrottled(t *testing.T) {
	env := newTestEnv(t)

	key := make([]byte, 32)
	tokens, err := auth.NewTokenService(hex.EncodeToString(key), time.Hour)
	require.NoError(t, err)

	// One attempt, then the bucket is empty.
	svc := NewAuthService(env.store, tokens, ratelimit.New(0.01, 1), env.validator, env.logger)
	seedOneAdmin(t, svc)

	req := LoginRequest{Email: "admin@framelight.example", Password: "correct horse battery"}

	_, err = svc.Login(context.Background(), req, "10.0.0.2")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), req, "10.0.0.2")
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeInvalidCredentials, derr.Code)

	// A different client key has its own bucket.
	_, err = svc.Login(context.Background(), req, "10.0.0.3")
	require.NoError(t, err)
}

func TestAuthService_Verify(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@framelight.example",
		Password: "correct horse battery",
	}, "10.0.0.1")
	require.NoError(t, err)

	user, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@framelight.example", user.Email)

	_, err = svc.Verify(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestAuthService_VerifyAfterAccountRemoved(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@framelight.example",
		Password: "correct horse battery",
	}, "10.0.0.1")
	require.NoError(t, err)

	// Re-seed without the account; the token should die with it.
	require.NoError(t, svc.SeedAdmins(context.Background(), nil))

	_, err = svc.Verify(context.Background(), result.Token)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeUnauthorized, derr.Code)
}

func TestAuthService_SeedAdmins_UpdatesPassword(t *testing.T) {
	svc := newAuthService(t)
	seedOneAdmin(t, svc)

	err := svc.SeedAdmins(context.Background(), []config.AdminAccount{
		{Email: "admin@framelight.example", Name: "Admin", Password: "rotated passphrase"},
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "admin@framelight.example",
		Password: "correct horse battery",
	}, "10.0.0.1")
	require.Error(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "admin@framelight.example",
		Password: "rotated passphrase",
	}, "10.0.0.1")
	require.NoError(t, err)
}
