package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "Admin login",
		Description: "Exchanges admin credentials for an access token",
		Tags:        []string{"Auth"},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/api/v1/auth/me",
		Summary:     "Current user",
		Description: "Returns the admin the presented token belongs to",
		Tags:        []string{"Auth"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCurrentUser)
}

// === DTOs ===

// LoginRequestBody is the request body for admin login.
type LoginRequestBody struct {
	Email    string `json:"email" doc:"Admin email"`
	Password string `json:"password" doc:"Admin password"`
}

// LoginInput wraps the login request for Huma.
type LoginInput struct {
	XForwardedFor string `header:"X-Forwarded-For"`
	XRealIP       string `header:"X-Real-IP"`
	Body          LoginRequestBody
}

// UserResponse contains admin account data in API responses.
type UserResponse struct {
	ID        string    `json:"id" doc:"User ID"`
	Email     string    `json:"email" doc:"Email address"`
	Name      string    `json:"name" doc:"Display name"`
	Role      string    `json:"role" doc:"Account role"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
}

// LoginResponse contains the issued token and the signed-in admin.
type LoginResponse struct {
	Token     string       `json:"token" doc:"PASETO access token"`
	ExpiresIn int64        `json:"expires_in" doc:"Token lifetime in seconds"`
	User      UserResponse `json:"user" doc:"Signed-in admin"`
}

// LoginOutput wraps the login response for Huma.
type LoginOutput struct {
	Body LoginResponse
}

// GetCurrentUserInput contains parameters for the current user lookup.
type GetCurrentUserInput struct {
	Authorization string `header:"Authorization"`
}

// UserOutput wraps the user response for Huma.
type UserOutput struct {
	Body UserResponse
}

// === Handlers ===

func (s *Server) handleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := s.services.Auth.Login(ctx, service.LoginRequest{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	}, extractIP(input.XForwardedFor, input.XRealIP))
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Body: LoginResponse{
			Token:     result.Token,
			ExpiresIn: result.ExpiresIn,
			User:      mapUserResponse(result.User),
		},
	}, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, input *GetCurrentUserInput) (*UserOutput, error) {
	user, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	return &UserOutput{Body: mapUserResponse(user.Strip())}, nil
}

func mapUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
