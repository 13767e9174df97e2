package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// BlogListOptions tune the blog listing.
type BlogListOptions struct {
	Page   int
	Limit  int
	Search string

	// Published filters by publish state when set.
	Published *bool

	// Categories keeps posts referencing any of the category IDs.
	Categories []string

	// Tag keeps posts referencing the tag ID.
	Tag string

	// Author keeps posts by the author ID.
	Author string

	// Exclude drops the post with this slug, for related-post strips.
	Exclude string
}

func (o BlogListOptions) query() url.Values {
	query := pageQuery(o.Page, o.Limit)
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	if o.Published != nil {
		query.Set("published", strconv.FormatBool(*o.Published))
	}
	for _, category := range o.Categories {
		query.Add("categories", category)
	}
	if o.Tag != "" {
		query.Set("tag", o.Tag)
	}
	if o.Author != "" {
		query.Set("author", o.Author)
	}
	if o.Exclude != "" {
		query.Set("exclude", o.Exclude)
	}
	return query
}

// ListBlogs returns one page of posts matching the filters.
func (c *Client) ListBlogs(ctx context.Context, opts BlogListOptions) (*BlogPage, error) {
	var page BlogPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBlog returns a post by ID.
func (c *Client) GetBlog(ctx context.Context, id string) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs/"+url.PathEscape(id), nil, nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetBlogBySlug returns a post by its URL slug.
func (c *Client) GetBlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs/slug/"+url.PathEscape(slug), nil, nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// CreateBlog adds a post. Requires a token.
func (c *Client) CreateBlog(ctx context.Context, req BlogRequest) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodPost, "/api/v1/blogs", nil, req, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog replaces a post. Requires a token.
func (c *Client) UpdateBlog(ctx context.Context, id string, req BlogRequest) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodPut, "/api/v1/blogs/"+url.PathEscape(id), nil, req, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog removes a post. Requires a token.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/blogs/"+url.PathEscape(id), nil, nil, nil)
}
