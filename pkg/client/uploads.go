package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// UploadImage pushes image bytes to the CDN through the server. Kind
// selects the transform applied before storage: film, series,
// thumbnail, banner or editor. Requires a token.
func (c *Client) UploadImage(ctx context.Context, kind, contentType string, data []byte) (*Upload, error) {
	var upload Upload
	path := "/api/v1/uploads/" + url.PathEscape(kind)
	if err := c.doRaw(ctx, http.MethodPost, path, contentType, bytes.NewReader(data), &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

// DeleteUpload removes a stored image from the CDN by its public ID.
// Requires a token.
func (c *Client) DeleteUpload(ctx context.Context, publicID string) error {
	body := map[string]string{"public_id": publicID}
	return c.do(ctx, http.MethodDelete, "/api/v1/uploads", nil, body, nil)
}

// SubmitContact sends a contact form submission to the studio inbox.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/contact", nil, req, nil)
}

// SearchOptions tune a federated search.
type SearchOptions struct {
	Types     []string // film, series, blog; empty searches all
	Genres    []string
	MinYear   int
	MaxYear   int
	SortBy    string // relevance, title, recent or year
	SortOrder string // asc or desc
	Limit     int
	Offset    int
	Highlight bool
}

// Search runs a full-text query across films, series and blog posts.
func (c *Client) Search(ctx context.Context, queryText string, opts SearchOptions) (*SearchResult, error) {
	query := url.Values{}
	query.Set("q", queryText)
	for _, t := range opts.Types {
		query.Add("types", t)
	}
	for _, g := range opts.Genres {
		query.Add("genres", g)
	}
	if opts.MinYear > 0 {
		query.Set("min_year", strconv.Itoa(opts.MinYear))
	}
	if opts.MaxYear > 0 {
		query.Set("max_year", strconv.Itoa(opts.MaxYear))
	}
	if opts.SortBy != "" {
		query.Set("sort", opts.SortBy)
	}
	if opts.SortOrder != "" {
		query.Set("order", opts.SortOrder)
	}
	if opts.Limit > 0 {
		query.Set("limit", fmt.Sprint(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", fmt.Sprint(opts.Offset))
	}
	if opts.Highlight {
		query.Set("highlight", "true")
	}

	var result SearchResult
	if err := c.do(ctx, http.MethodGet, "/api/v1/search", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks the server.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
