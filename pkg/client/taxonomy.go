package client

import (
	"context"
	"net/http"
	"net/url"
)

// ListCategories returns all categories sorted by name.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var listing struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, nil, &listing); err != nil {
		return nil, err
	}
	return listing.Categories, nil
}

// GetCategory returns a category by ID.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories/"+url.PathEscape(id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryBySlug returns a category by its URL slug.
func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories/slug/"+url.PathEscape(slug), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory adds a category. Requires a token.
func (c *Client) CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPost, "/api/v1/categories", nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces a category. Requires a token.
func (c *Client) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPut, "/api/v1/categories/"+url.PathEscape(id), nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Posts keep the dangling reference.
// Requires a token.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/categories/"+url.PathEscape(id), nil, nil, nil)
}

// ListTags returns all tags sorted by name.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var listing struct {
		Tags []Tag `json:"tags"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/tags", nil, nil, &listing); err != nil {
		return nil, err
	}
	return listing.Tags, nil
}

// GetTag returns a tag by ID.
func (c *Client) GetTag(ctx context.Context, id string) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodGet, "/api/v1/tags/"+url.PathEscape(id), nil, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTagBySlug returns a tag by its URL slug.
func (c *Client) GetTagBySlug(ctx context.Context, slug string) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodGet, "/api/v1/tags/slug/"+url.PathEscape(slug), nil, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag adds a tag. Requires a token.
func (c *Client) CreateTag(ctx context.Context, req TagRequest) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodPost, "/api/v1/tags", nil, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag replaces a tag. Requires a token.
func (c *Client) UpdateTag(ctx context.Context, id string, req TagRequest) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodPut, "/api/v1/tags/"+url.PathEscape(id), nil, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag. Posts keep the dangling reference. Requires
// a token.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tags/"+url.PathEscape(id), nil, nil, nil)
}

// ListAuthors returns all authors sorted by name.
func (c *Client) ListAuthors(ctx context.Context) ([]Author, error) {
	var listing struct {
		Authors []Author `json:"authors"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/authors", nil, nil, &listing); err != nil {
		return nil, err
	}
	return listing.Authors, nil
}

// GetAuthor returns an author by ID.
func (c *Client) GetAuthor(ctx context.Context, id string) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodGet, "/api/v1/authors/"+url.PathEscape(id), nil, nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAuthorBySlug returns an author by its URL slug.
func (c *Client) GetAuthorBySlug(ctx context.Context, slug string) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodGet, "/api/v1/authors/slug/"+url.PathEscape(slug), nil, nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// CreateAuthor adds an author. Requires a token.
func (c *Client) CreateAuthor(ctx context.Context, req AuthorRequest) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodPost, "/api/v1/authors", nil, req, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// UpdateAuthor replaces an author. Requires a token.
func (c *Client) UpdateAuthor(ctx context.Context, id string, req AuthorRequest) (*Author, error) {
	var author Author
	if err := c.do(ctx, http.MethodPut, "/api/v1/authors/"+url.PathEscape(id), nil, req, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// DeleteAuthor removes an author. Requires a token.
func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/authors/"+url.PathEscape(id), nil, nil, nil)
}

// ListBanners returns banners in display order. With activeOnly the
// listing keeps only banners the carousel shows.
func (c *Client) ListBanners(ctx context.Context, activeOnly bool) ([]Banner, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("active", "true")
	}

	var listing struct {
		Banners []Banner `json:"banners"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/banners", query, nil, &listing); err != nil {
		return nil, err
	}
	return listing.Banners, nil
}

// GetBanner returns a banner by ID.
func (c *Client) GetBanner(ctx context.Context, id string) (*Banner, error) {
	var banner Banner
	if err := c.do(ctx, http.MethodGet, "/api/v1/banners/"+url.PathEscape(id), nil, nil, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// CreateBanner adds a banner. Requires a token.
func (c *Client) CreateBanner(ctx context.Context, req BannerRequest) (*Banner, error) {
	var banner Banner
	if err := c.do(ctx, http.MethodPost, "/api/v1/banners", nil, req, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// UpdateBanner replaces a banner. Requires a token.
func (c *Client) UpdateBanner(ctx context.Context, id string, req BannerRequest) (*Banner, error) {
	var banner Banner
	if err := c.do(ctx, http.MethodPut, "/api/v1/banners/"+url.PathEscape(id), nil, req, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// DeleteBanner removes a banner. Requires a token.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/banners/"+url.PathEscape(id), nil, nil, nil)
}
