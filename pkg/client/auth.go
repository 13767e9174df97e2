package client

import (
	"context"
	"net/http"
)

// Login signs in with an admin account. The returned token is installed
// on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, body, &result); err != nil {
		return nil, err
	}

	c.token = result.Token
	return &result, nil
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
