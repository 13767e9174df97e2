package client

import (
	"context"
	"net/http"
	"net/url"
)

// ListSeries returns one page of series.
func (c *Client) ListSeries(ctx context.Context, opts ListOptions) (*SeriesPage, error) {
	var page SeriesPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/series", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSeries returns a series by ID.
func (c *Client) GetSeries(ctx context.Context, id string) (*Series, error) {
	var series Series
	if err := c.do(ctx, http.MethodGet, "/api/v1/series/"+url.PathEscape(id), nil, nil, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// GetSeriesBySlug returns a series by its URL slug.
func (c *Client) GetSeriesBySlug(ctx context.Context, slug string) (*Series, error) {
	var series Series
	if err := c.do(ctx, http.MethodGet, "/api/v1/series/slug/"+url.PathEscape(slug), nil, nil, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// CreateSeries adds a series to the catalog. Requires a token.
func (c *Client) CreateSeries(ctx context.Context, req SeriesRequest) (*Series, error) {
	var series Series
	if err := c.do(ctx, http.MethodPost, "/api/v1/series", nil, req, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// UpdateSeries replaces a series. Requires a token.
func (c *Client) UpdateSeries(ctx context.Context, id string, req SeriesRequest) (*Series, error) {
	var series Series
	if err := c.do(ctx, http.MethodPut, "/api/v1/series/"+url.PathEscape(id), nil, req, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// DeleteSeries removes a series. Requires a token.
func (c *Client) DeleteSeries(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/series/"+url.PathEscape(id), nil, nil, nil)
}
