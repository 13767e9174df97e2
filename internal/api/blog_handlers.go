package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerBlogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBlogs",
		Method:      http.MethodGet,
		Path:        "/api/v1/blogs",
		Summary:     "List blog posts",
		Description: "Returns one page of posts matching the filters, newest first",
		Tags:        []string{"Blogs"},
	}, s.handleListBlogs)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createBlog",
		Method:        http.MethodPost,
		Path:          "/api/v1/blogs",
		Summary:       "Create blog post",
		Description:   "Creates a new post",
		Tags:          []string{"Blogs"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateBlog)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBlog",
		Method:      http.MethodGet,
		Path:        "/api/v1/blogs/{id}",
		Summary:     "Get blog post",
		Description: "Returns a post by ID",
		Tags:        []string{"Blogs"},
	}, s.handleGetBlog)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBlogBySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/blogs/slug/{slug}",
		Summary:     "Get blog post by slug",
		Description: "Returns a post by its URL slug",
		Tags:        []string{"Blogs"},
	}, s.handleGetBlogBySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBlog",
		Method:      http.MethodPut,
		Path:        "/api/v1/blogs/{id}",
		Summary:     "Update blog post",
		Description: "Replaces a post",
		Tags:        []string{"Blogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateBlog)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBlog",
		Method:      http.MethodDelete,
		Path:        "/api/v1/blogs/{id}",
		Summary:     "Delete blog post",
		Description: "Deletes a post",
		Tags:        []string{"Blogs"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteBlog)
}

// === DTOs ===

// ImageRefBody mirrors an image reference in request and response
// bodies.
type ImageRefBody struct {
	URL      string `json:"url" doc:"Image URL"`
	Alt      string `json:"alt,omitempty" doc:"Alt text"`
	PublicID string `json:"public_id,omitempty" doc:"CDN public ID"`
}

// BlogRequestBody is the request body for creating or replacing a post.
type BlogRequestBody struct {
	Title            string       `json:"title" doc:"Post title"`
	Slug             string       `json:"slug,omitempty" doc:"Explicit slug; derived from the title when empty"`
	ShortDescription string       `json:"short_description" doc:"Teaser shown on post cards"`
	Content          string       `json:"content" doc:"Post body as editor HTML"`
	ThumbnailImage   ImageRefBody `json:"thumbnail_image" doc:"Card image"`
	BannerImage      ImageRefBody `json:"banner_image" doc:"Full-width header image"`
	CategoryIDs      []string     `json:"category_ids" doc:"Category IDs; at least one"`
	TagIDs           []string     `json:"tag_ids,omitempty" doc:"Tag IDs"`
	AuthorID         string       `json:"author_id" doc:"Author ID"`
	Published        bool         `json:"published" doc:"Publish immediately"`
	ReadTime         int          `json:"read_time,omitempty" doc:"Minutes; estimated from content when zero"`
	MetaTitle        string       `json:"meta_title,omitempty" doc:"SEO title override"`
	MetaDescription  string       `json:"meta_description,omitempty" doc:"SEO description override"`
	MetaKeywords     string       `json:"meta_keywords,omitempty" doc:"SEO keywords, comma separated"`
}

// BlogResponse contains post data in API responses.
type BlogResponse struct {
	ID               string       `json:"id" doc:"Post ID"`
	Title            string       `json:"title" doc:"Post title"`
	Slug             string       `json:"slug" doc:"URL-safe slug"`
	ShortDescription string       `json:"short_description" doc:"Teaser shown on post cards"`
	Content          string       `json:"content" doc:"Post body as editor HTML"`
	ThumbnailImage   ImageRefBody `json:"thumbnail_image" doc:"Card image"`
	BannerImage      ImageRefBody `json:"banner_image" doc:"Full-width header image"`
	CategoryIDs      []string     `json:"category_ids" doc:"Category IDs"`
	TagIDs           []string     `json:"tag_ids" doc:"Tag IDs"`
	AuthorID         string       `json:"author_id" doc:"Author ID"`
	Published        bool         `json:"published" doc:"Whether the post is live"`
	PublishedAt      *time.Time   `json:"published_at,omitempty" doc:"First publish time"`
	ReadTime         int          `json:"read_time,omitempty" doc:"Estimated reading minutes"`
	MetaTitle        string       `json:"meta_title,omitempty" doc:"SEO title override"`
	MetaDescription  string       `json:"meta_description,omitempty" doc:"SEO description override"`
	MetaKeywords     string       `json:"meta_keywords,omitempty" doc:"SEO keywords, comma separated"`
	CreatedAt        time.Time    `json:"created_at" doc:"Creation time"`
	UpdatedAt        time.Time    `json:"updated_at" doc:"Last update time"`
}

// ListBlogsInput contains parameters for listing posts.
type ListBlogsInput struct {
	Page        int      `query:"page" minimum:"1" doc:"Page number (1-based)"`
	Limit       int      `query:"limit" minimum:"1" maximum:"100" doc:"Page size"`
	Search      string   `query:"search" doc:"Full-text query over title, excerpt and content"`
	Published   string   `query:"published" doc:"Filter by publish state (true or false)"`
	Categories  []string `query:"categories" doc:"Filter by category IDs (any match)"`
	TagID       string   `query:"tag" doc:"Filter by tag ID"`
	AuthorID    string   `query:"author" doc:"Filter by author ID"`
	ExcludeSlug string   `query:"exclude" doc:"Drop the post with this slug"`
}

// ListBlogsResponse contains one page of posts.
type ListBlogsResponse struct {
	Blogs      []BlogResponse     `json:"blogs" doc:"Posts on this page"`
	Pagination PaginationResponse `json:"pagination" doc:"Page metadata"`
}

// ListBlogsOutput wraps the post listing for Huma.
type ListBlogsOutput struct {
	Body ListBlogsResponse
}

// CreateBlogInput wraps the create post request for Huma.
type CreateBlogInput struct {
	Authorization string `header:"Authorization"`
	Body          BlogRequestBody
}

// BlogOutput wraps the post response for Huma.
type BlogOutput struct {
	Body BlogResponse
}

// GetBlogInput contains parameters for getting a post.
type GetBlogInput struct {
	ID string `path:"id" doc:"Post ID"`
}

// GetBlogBySlugInput contains parameters for the slug lookup.
type GetBlogBySlugInput struct {
	Slug string `path:"slug" doc:"Post slug"`
}

// UpdateBlogInput wraps the update post request for Huma.
type UpdateBlogInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Post ID"`
	Body          BlogRequestBody
}

// DeleteBlogInput contains parameters for deleting a post.
type DeleteBlogInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Post ID"`
}

// === Handlers ===

func (s *Server) handleListBlogs(ctx context.Context, input *ListBlogsInput) (*ListBlogsOutput, error) {
	params := service.BlogListParams{
		PageParams:  pageParams(input.Page, input.Limit),
		Search:      input.Search,
		CategoryIDs: input.Categories,
		TagID:       input.TagID,
		AuthorID:    input.AuthorID,
		ExcludeSlug: input.ExcludeSlug,
	}

	switch input.Published {
	case "true":
		published := true
		params.Published = &published
	case "false":
		published := false
		params.Published = &published
	}

	posts, meta, err := s.services.Blog.List(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := make([]BlogResponse, len(posts))
	for i, p := range posts {
		resp[i] = mapBlogResponse(p)
	}

	return &ListBlogsOutput{Body: ListBlogsResponse{Blogs: resp, Pagination: meta}}, nil
}

func (s *Server) handleCreateBlog(ctx context.Context, input *CreateBlogInput) (*BlogOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	post, err := s.services.Blog.Create(ctx, blogRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &BlogOutput{Body: mapBlogResponse(post)}, nil
}

func (s *Server) handleGetBlog(ctx context.Context, input *GetBlogInput) (*BlogOutput, error) {
	post, err := s.services.Blog.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &BlogOutput{Body: mapBlogResponse(post)}, nil
}

func (s *Server) handleGetBlogBySlug(ctx context.Context, input *GetBlogBySlugInput) (*BlogOutput, error) {
	post, err := s.services.Blog.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	return &BlogOutput{Body: mapBlogResponse(post)}, nil
}

func (s *Server) handleUpdateBlog(ctx context.Context, input *UpdateBlogInput) (*BlogOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	post, err := s.services.Blog.Update(ctx, input.ID, blogRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &BlogOutput{Body: mapBlogResponse(post)}, nil
}

func (s *Server) handleDeleteBlog(ctx context.Context, input *DeleteBlogInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Blog.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Blog post deleted"}}, nil
}

func blogRequest(body BlogRequestBody) service.BlogRequest {
	return service.BlogRequest{
		Title:            body.Title,
		Slug:             body.Slug,
		ShortDescription: body.ShortDescription,
		Content:          body.Content,
		ThumbnailImage: service.ImageRefRequest{
			URL:      body.ThumbnailImage.URL,
			Alt:      body.ThumbnailImage.Alt,
			PublicID: body.ThumbnailImage.PublicID,
		},
		BannerImage: service.ImageRefRequest{
			URL:      body.BannerImage.URL,
			Alt:      body.BannerImage.Alt,
			PublicID: body.BannerImage.PublicID,
		},
		CategoryIDs:     body.CategoryIDs,
		TagIDs:          body.TagIDs,
		AuthorID:        body.AuthorID,
		Published:       body.Published,
		ReadTime:        body.ReadTime,
		MetaTitle:       body.MetaTitle,
		MetaDescription: body.MetaDescription,
		MetaKeywords:    body.MetaKeywords,
	}
}

func mapBlogResponse(p *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		ThumbnailImage: ImageRefBody{
			URL:      p.ThumbnailImage.URL,
			Alt:      p.ThumbnailImage.Alt,
			PublicID: p.ThumbnailImage.PublicID,
		},
		BannerImage: ImageRefBody{
			URL:      p.BannerImage.URL,
			Alt:      p.BannerImage.Alt,
			PublicID: p.BannerImage.PublicID,
		},
		CategoryIDs:     p.CategoryIDs,
		TagIDs:          p.TagIDs,
		AuthorID:        p.AuthorID,
		Published:       p.Published,
		PublishedAt:     p.PublishedAt,
		ReadTime:        p.ReadTime,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
