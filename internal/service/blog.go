package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/id"
	"github.com/framelightapp/framelight-server/internal/search"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// wordsPerMinute feeds the read time estimate shown on post cards.
const wordsPerMinute = 200

// BlogService owns blog posts.
type BlogService struct {
	store     *store.Store
	search    *SearchService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(st *store.Store, search *SearchService, validator *validation.Validator, logger *slog.Logger) *BlogService {
	return &BlogService{
		store:     st,
		search:    search,
		validator: validator,
		logger:    logger,
	}
}

// ImageRefRequest carries an image reference in a write payload. The
// URL is what matters; alt text and the CDN public ID ride along.
type ImageRefRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Alt      string `json:"alt,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

func (r ImageRefRequest) toDomain() domain.ImageRef {
	return domain.ImageRef{URL: r.URL, Alt: r.Alt, PublicID: r.PublicID}
}

// BlogRequest is the payload for creating or replacing a post.
type BlogRequest struct {
	Title            string          `json:"title" validate:"required,max=300"`
	Slug             string          `json:"slug,omitempty"`
	ShortDescription string          `json:"short_description" validate:"required,max=600"`
	Content          string          `json:"content" validate:"required"`
	ThumbnailImage   ImageRefRequest `json:"thumbnail_image"`
	BannerImage      ImageRefRequest `json:"banner_image"`
	CategoryIDs      []string        `json:"category_ids" validate:"required,min=1,dive,required"`
	TagIDs           []string        `json:"tag_ids,omitempty"`
	AuthorID         string          `json:"author_id" validate:"required"`
	Published        bool            `json:"published"`
	ReadTime         int             `json:"read_time,omitempty" validate:"gte=0"`
	MetaTitle        string          `json:"meta_title,omitempty" validate:"max=300"`
	MetaDescription  string          `json:"meta_description,omitempty" validate:"max=600"`
	MetaKeywords     string          `json:"meta_keywords,omitempty" validate:"max=600"`
}

// BlogListParams filter the blog listing. The zero value lists
// everything, newest first.
type BlogListParams struct {
	store.PageParams

	// Search, when set, restricts the listing to full-text matches and
	// orders by relevance instead of recency.
	Search string

	// Published, when set, keeps only posts matching the flag. Public
	// pages pass true; the admin passes nothing and sees drafts too.
	Published *bool

	// CategoryIDs keeps posts referencing any of the categories.
	CategoryIDs []string

	// TagID keeps posts referencing the tag.
	TagID string

	// AuthorID keeps posts by the author.
	AuthorID string

	// ExcludeSlug drops one post from the result. Used by the related
	// posts strip so the post being read never lists itself.
	ExcludeSlug string
}

// List returns one page of posts matching the filters, newest first.
func (s *BlogService) List(ctx context.Context, params BlogListParams) ([]*domain.Blog, store.Pagination, error) {
	params.Normalize()

	all, err := s.store.Blogs.All(ctx)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("list blogs: %w", err)
	}

	filtered := all[:0]
	for _, post := range all {
		if params.Published != nil && post.Published != *params.Published {
			continue
		}
		if len(params.CategoryIDs) > 0 && !containsAny(post.CategoryIDs, params.CategoryIDs) {
			continue
		}
		if params.TagID != "" && !contains(post.TagIDs, params.TagID) {
			continue
		}
		if params.AuthorID != "" && post.AuthorID != params.AuthorID {
			continue
		}
		if params.ExcludeSlug != "" && post.Slug == params.ExcludeSlug {
			continue
		}
		filtered = append(filtered, post)
	}

	if params.Search != "" {
		ids, err := s.search.MatchIDs(ctx, search.DocTypeBlog, params.Search)
		if err != nil {
			return nil, store.Pagination{}, fmt.Errorf("search blogs: %w", err)
		}
		filtered = orderByRank(filtered, ids, func(b *domain.Blog) string { return b.ID })
	} else {
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	page, meta := store.Page(filtered, params.PageParams)
	return page, meta, nil
}

// Get returns a post by ID.
func (s *BlogService) Get(ctx context.Context, blogID string) (*domain.Blog, error) {
	post, err := s.store.Blogs.Get(ctx, blogID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Blog post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return post, nil
}

// GetBySlug returns a post by its URL slug.
func (s *BlogService) GetBySlug(ctx context.Context, blogSlug string) (*domain.Blog, error) {
	post, err := s.store.Blogs.GetByIndex(ctx, "slug", blogSlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Blog post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return post, nil
}

// Create validates and stores a new post. PublishedAt is stamped when
// the post goes out published; drafts get it on first publish instead.
func (s *BlogService) Create(ctx context.Context, req BlogRequest) (*domain.Blog, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	blogSlug, err := resolveSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	blogID, err := id.Generate("blog")
	if err != nil {
		return nil, fmt.Errorf("generate blog ID: %w", err)
	}

	post := s.fromRequest(req, blogSlug)
	post.ID = blogID
	post.InitTimestamps()

	if post.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.store.Blogs.Create(ctx, blogID, post); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Blog post with this slug already exists")
		}
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.search.IndexBlog(post)

	s.logger.Info("blog created", "blog_id", blogID, "slug", blogSlug, "published", post.Published)
	return post, nil
}

// Update replaces an existing post. The original publish time survives
// a round trip through draft and back.
func (s *BlogService) Update(ctx context.Context, blogID string, req BlogRequest) (*domain.Blog, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, blogID)
	if err != nil {
		return nil, err
	}

	blogSlug := existing.Slug
	if req.Slug != "" {
		blogSlug, err = resolveSlug(req.Slug, req.Title)
		if err != nil {
			return nil, err
		}
	}

	post := s.fromRequest(req, blogSlug)
	post.Timestamps = existing.Timestamps
	post.PublishedAt = existing.PublishedAt
	post.Touch()

	if post.Published && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.store.Blogs.Update(ctx, blogID, post); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Blog post with this slug already exists")
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Blog post not found")
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	s.search.IndexBlog(post)

	s.logger.Info("blog updated", "blog_id", blogID, "slug", blogSlug, "published", post.Published)
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, blogID string) error {
	if err := s.store.Blogs.Delete(ctx, blogID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Blog post not found")
		}
		return fmt.Errorf("delete blog: %w", err)
	}

	s.search.Remove(blogID)

	s.logger.Info("blog deleted", "blog_id", blogID)
	return nil
}

func (s *BlogService) fromRequest(req BlogRequest, blogSlug string) *domain.Blog {
	post := &domain.Blog{
		Title:            req.Title,
		Slug:             blogSlug,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		ThumbnailImage:   req.ThumbnailImage.toDomain(),
		BannerImage:      req.BannerImage.toDomain(),
		CategoryIDs:      req.CategoryIDs,
		TagIDs:           req.TagIDs,
		AuthorID:         req.AuthorID,
		Published:        req.Published,
		ReadTime:         req.ReadTime,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		MetaKeywords:     req.MetaKeywords,
	}
	if post.ReadTime == 0 {
		post.ReadTime = estimateReadTime(post.Content)
	}
	return post
}

// estimateReadTime counts words in the rendered text of the post,
// not in the raw HTML, so markup-heavy posts don't read as longer.
func estimateReadTime(content string) int {
	text, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		text = content
	}

	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsAny(values, wanted []string) bool {
	for _, w := range wanted {
		if contains(values, w) {
			return true
		}
	}
	return false
}
