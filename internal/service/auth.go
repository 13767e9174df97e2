package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/framelightapp/framelight-server/internal/auth"
	"github.com/framelightapp/framelight-server/internal/config"
	"github.com/framelightapp/framelight-server/internal/domain"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/id"
	"github.com/framelightapp/framelight-server/internal/ratelimit"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// AuthService signs admins in and verifies their tokens. Accounts are
// seeded from configuration at startup; there is no self-serve signup.
type AuthService struct {
	store     *store.Store
	tokens    *auth.TokenService
	limiter   *ratelimit.KeyedRateLimiter
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAuthService creates a new auth service. The limiter throttles
// login attempts per client IP.
func NewAuthService(st *store.Store, tokens *auth.TokenService, limiter *ratelimit.KeyedRateLimiter, validator *validation.Validator, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:     st,
		tokens:    tokens,
		limiter:   limiter,
		validator: validator,
		logger:    logger,
	}
}

// LoginRequest is the payload for the admin login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued token and the signed-in user.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
	User      domain.User `json:"user"`
}

// SeedAdmins upserts the configured admin accounts. Passwords are
// hashed here so plain text never reaches the store. Accounts removed
// from configuration are deleted so a revoked admin cannot sign in.
func (s *AuthService) SeedAdmins(ctx context.Context, accounts []config.AdminAccount) error {
	configured := make(map[string]bool, len(accounts))

	for _, account := range accounts {
		email := strings.ToLower(strings.TrimSpace(account.Email))
		configured[email] = true

		hash, err := auth.HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", email, err)
		}

		existing, err := s.store.Users.GetByIndex(ctx, "email", email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("look up admin %s: %w", email, err)
		}

		if existing != nil {
			existing.Name = account.Name
			existing.PasswordHash = hash
			existing.Touch()
			if err := s.store.Users.Update(ctx, existing.ID, existing); err != nil {
				return fmt.Errorf("update admin %s: %w", email, err)
			}
			continue
		}

		userID, err := id.Generate("user")
		if err != nil {
			return fmt.Errorf("generate user ID: %w", err)
		}

		user := &domain.User{
			Email:        email,
			Name:         account.Name,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}
		user.ID = userID
		user.InitTimestamps()

		if err := s.store.Users.Create(ctx, userID, user); err != nil {
			return fmt.Errorf("create admin %s: %w", email, err)
		}
		s.logger.Info("admin account seeded", "email", email)
	}

	users, err := s.store.Users.All(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, user := range users {
		if configured[user.Email] {
			continue
		}
		if err := s.store.Users.Delete(ctx, user.ID); err != nil {
			return fmt.Errorf("remove stale admin %s: %w", user.Email, err)
		}
		s.logger.Info("stale admin removed", "email", user.Email)
	}

	return nil
}

// Login checks the credentials and issues an access token. clientKey
// identifies the caller for rate limiting; the HTTP layer passes the
// client IP. A throttled or failed attempt gives the same generic
// error so the endpoint never confirms which emails exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest, clientKey string) (*LoginResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if clientKey != "" && !s.limiter.Allow(clientKey) {
		s.logger.Warn("login throttled", "client", clientKey)
		return nil, domainerrors.InvalidCredentials("invalid email or password")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.store.Users.GetByIndex(ctx, "email", email)
	if errors.Is(err, store.ErrNotFound) {
		// Burn the same hashing cost as a real account so response
		// timing doesn't leak whether the email exists.
		_, _ = auth.HashPassword(req.Password)
		return nil, domainerrors.InvalidCredentials("invalid email or password")
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	match, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		s.logger.Warn("failed login", "email", email)
		return nil, domainerrors.InvalidCredentials("invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("admin signed in", "email", email)
	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(s.tokens.AccessTokenDuration().Seconds()),
		User:      user.Strip(),
	}, nil
}

// Verify checks an access token and returns the user it belongs to.
// The store lookup ensures a token outlives neither its user nor a
// configuration change that removed the account.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Users.Get(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.Unauthorized("account no longer exists")
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	return user, nil
}
