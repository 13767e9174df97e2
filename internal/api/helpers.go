package api

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/store"
)

// authenticateRequest validates the Authorization header and returns
// the authenticated admin. Every mutating route starts with this; the
// token is checked server-side regardless of what the admin frontend
// believes about its session.
func (s *Server) authenticateRequest(ctx context.Context, authHeader string) (*domain.User, error) {
	if authHeader == "" {
		return nil, huma.Error401Unauthorized("Missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, huma.Error401Unauthorized("Invalid authorization header format")
	}

	user, err := s.services.Auth.Verify(ctx, parts[1])
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid or expired token")
	}

	return user, nil
}

// extractIP picks the client IP for rate limiting. Proxy headers win
// over the socket address.
func extractIP(forwardedFor, realIP string) string {
	if forwardedFor != "" {
		if i := strings.IndexByte(forwardedFor, ','); i >= 0 {
			return strings.TrimSpace(forwardedFor[:i])
		}
		return strings.TrimSpace(forwardedFor)
	}
	return realIP
}

// pageParams builds store pagination from query values. Out-of-range
// values are clamped rather than rejected.
func pageParams(page, limit int) store.PageParams {
	params := store.PageParams{Page: page, Limit: limit}
	params.Normalize()
	return params
}
