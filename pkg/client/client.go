// Package client is a typed Go client for the Framelight server API.
// Every REST operation has a matching method; transport failures and
// API error envelopes both surface as *Error so callers have a single
// failure path to inspect.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Error codes returned by the server.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeValidation         = "VALIDATION"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeUpstream           = "UPSTREAM"
	CodeInternal           = "INTERNAL"
)

// Error is an API failure decoded from the response envelope. Status
// holds the HTTP status code; Code is the server's machine-readable
// error code. Details carries whatever the server attached: field
// validation failures arrive as a map of field name to message, schema
// rejections as a list of strings.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	if details := e.detailStrings(); len(details) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(details, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldErrors returns validation details keyed by field name, or nil
// when the failure carried none.
func (e *Error) FieldErrors() map[string]string {
	fields, _ := e.Details.(map[string]string)
	return fields
}

func (e *Error) detailStrings() []string {
	switch d := e.Details.(type) {
	case map[string]string:
		out := make([]string, 0, len(d))
		for field, msg := range d {
			out = append(out, field+" "+msg)
		}
		sort.Strings(out)
		return out
	case []string:
		return d
	case string:
		return []string{d}
	}
	return nil
}

// IsNotFound reports whether err is an API error for a missing document.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsConflict reports whether err is a duplicate or conflicting write.
func IsConflict(err error) bool {
	return hasCode(err, CodeAlreadyExists) || hasCode(err, CodeConflict)
}

// IsValidation reports whether err is a rejected request payload.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsUnauthorized reports whether err is a missing, invalid or expired
// credential.
func IsUnauthorized(err error) bool {
	return hasCode(err, CodeUnauthorized) || hasCode(err, CodeInvalidCredentials) || hasCode(err, CodeTokenExpired)
}

func hasCode(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Client calls the Framelight server API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// New creates a client for the server at baseURL, e.g.
// https://api.framelight.example.
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// SetToken installs the bearer token sent on subsequent requests.
// Login calls this automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty when signed out.
func (c *Client) Token() string {
	return c.token
}

// envelope is the uniform response shape of the server.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// decodeDetails turns the envelope's details payload into the Go shape
// callers match on. Anything unrecognized is dropped rather than
// failing the whole error decode.
func decodeDetails(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		return fields
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return nil
}

// do sends a JSON request and decodes the envelope into out. A nil out
// discards the data payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doRaw sends a non-JSON payload, used for image uploads.
func (c *Client) doRaw(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return &Error{
			Status:  resp.StatusCode,
			Code:    CodeInternal,
			Message: fmt.Sprintf("unexpected response from server (status %d)", resp.StatusCode),
		}
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode, Code: CodeInternal, Message: "unknown error"}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = decodeDetails(env.Error.Details)
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// pageQuery builds the shared pagination query values.
func pageQuery(page, limit int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprint(limit))
	}
	return query
}
