// Package cdn is a client for the image CDN's HTTP API. Uploads push
// processed image bytes and return the public URL plus the public ID
// needed for later deletion.
package cdn

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/framelightapp/framelight-server/internal/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds CDN connection settings.
type Config struct {
	// BaseURL of the CDN API, e.g. https://cdn.example.com/api.
	BaseURL string
	// APIKey sent as a bearer token on every request.
	APIKey string
}

// Client talks to the image CDN. Uploads are not retried; a failed
// upload surfaces to the admin who simply tries again.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

// UploadResult is the CDN's answer to a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// New creates a new CDN client.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("cdn base URL cannot be empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid cdn base URL: %w", err)
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}, nil
}

// Upload pushes image bytes to the CDN under the given folder. The
// public ID is generated here so a retried upload never collides with a
// half-finished previous attempt.
func (c *Client) Upload(ctx context.Context, data []byte, folder string) (*UploadResult, error) {
	publicID := folder + "/" + uuid.NewString()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("public_id", publicID); err != nil {
		return nil, fmt.Errorf("write public_id field: %w", err)
	}
	part, err := writer.CreateFormFile("file", publicID+".jpg")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuth(req)

	c.logger.Debug("cdn upload", "public_id", publicID, "bytes", len(data))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Upstream("image CDN unreachable").WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.Upstream(fmt.Sprintf("image CDN upload failed with status %d", resp.StatusCode))
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.Upstream("image CDN returned malformed response").WithCause(err)
	}
	if result.URL == "" || result.PublicID == "" {
		return nil, errors.Upstream("image CDN response missing url or public_id")
	}

	return &result, nil
}

// Delete removes an asset by public ID. Deleting an unknown public ID
// is not an error; the asset is gone either way.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	endpoint := c.baseURL + "/assets/" + url.PathEscape(publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setAuth(req)

	c.logger.Debug("cdn delete", "public_id", publicID)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Upstream("image CDN unreachable").WithCause(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusNoContent, resp.StatusCode == http.StatusNotFound:
		return nil
	default:
		return errors.Upstream(fmt.Sprintf("image CDN delete failed with status %d", resp.StatusCode))
	}
}

func (c *Client) setAuth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("User-Agent", "Framelight/1.0")
}
