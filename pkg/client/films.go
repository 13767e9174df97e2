package client

import (
	"context"
	"net/http"
	"net/url"
)

// ListOptions tune a paginated catalog listing.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

func (o ListOptions) query() url.Values {
	query := pageQuery(o.Page, o.Limit)
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	return query
}

// ListFilms returns one page of films.
func (c *Client) ListFilms(ctx context.Context, opts ListOptions) (*FilmPage, error) {
	var page FilmPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/films", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetFilm returns a film by ID.
func (c *Client) GetFilm(ctx context.Context, id string) (*Film, error) {
	var film Film
	if err := c.do(ctx, http.MethodGet, "/api/v1/films/"+url.PathEscape(id), nil, nil, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

// GetFilmBySlug returns a film by its URL slug.
func (c *Client) GetFilmBySlug(ctx context.Context, slug string) (*Film, error) {
	var film Film
	if err := c.do(ctx, http.MethodGet, "/api/v1/films/slug/"+url.PathEscape(slug), nil, nil, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

// CreateFilm adds a film to the catalog. Requires a token.
func (c *Client) CreateFilm(ctx context.Context, req FilmRequest) (*Film, error) {
	var film Film
	if err := c.do(ctx, http.MethodPost, "/api/v1/films", nil, req, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

// UpdateFilm replaces a film. Requires a token.
func (c *Client) UpdateFilm(ctx context.Context, id string, req FilmRequest) (*Film, error) {
	var film Film
	if err := c.do(ctx, http.MethodPut, "/api/v1/films/"+url.PathEscape(id), nil, req, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

// DeleteFilm removes a film. Requires a token.
func (c *Client) DeleteFilm(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/films/"+url.PathEscape(id), nil, nil, nil)
}
