package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/framelightapp/framelight-server/internal/domain"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/id"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// AuthorService owns blog authors.
type AuthorService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAuthorService creates a new author service.
func NewAuthorService(st *store.Store, validator *validation.Validator, logger *slog.Logger) *AuthorService {
	return &AuthorService{
		store:     st,
		validator: validator,
		logger:    logger,
	}
}

// AuthorRequest is the payload for creating or replacing an author.
type AuthorRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Slug        string             `json:"slug,omitempty"`
	Email       string             `json:"email" validate:"required,email"`
	Bio         string             `json:"bio,omitempty" validate:"max=2000"`
	Avatar      domain.ImageRef    `json:"avatar"`
	SocialLinks domain.SocialLinks `json:"social_links"`
}

// List returns all authors sorted by name.
func (s *AuthorService) List(ctx context.Context) ([]*domain.Author, error) {
	authors, err := s.store.Authors.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].Name < authors[j].Name
	})
	return authors, nil
}

// Get returns an author by ID.
func (s *AuthorService) Get(ctx context.Context, authorID string) (*domain.Author, error) {
	author, err := s.store.Authors.Get(ctx, authorID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Author not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	return author, nil
}

// GetBySlug returns an author by their URL slug.
func (s *AuthorService) GetBySlug(ctx context.Context, authorSlug string) (*domain.Author, error) {
	author, err := s.store.Authors.GetByIndex(ctx, "slug", authorSlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Author not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get author by slug: %w", err)
	}
	return author, nil
}

// Create validates and stores a new author. Email addresses are unique
// case-insensitively; the slug is derived from the name unless given.
func (s *AuthorService) Create(ctx context.Context, req AuthorRequest) (*domain.Author, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	authorSlug, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	authorID, err := id.Generate("author")
	if err != nil {
		return nil, fmt.Errorf("generate author ID: %w", err)
	}

	author := &domain.Author{
		Name:        req.Name,
		Slug:        authorSlug,
		Email:       req.Email,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		SocialLinks: req.SocialLinks,
	}
	author.ID = authorID
	author.InitTimestamps()

	if err := s.store.Authors.Create(ctx, authorID, author); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, authorConflict(err)
		}
		return nil, fmt.Errorf("create author: %w", err)
	}

	s.logger.Info("author created", "author_id", authorID, "slug", authorSlug)
	return author, nil
}

// authorConflict picks the user-facing message for a unique index
// violation on authors.
func authorConflict(err error) error {
	if store.ConflictIndex(err) == "slug" {
		return domainerrors.AlreadyExists("Author with this slug already exists")
	}
	return domainerrors.AlreadyExists("Author with this email already exists")
}

// Update replaces an existing author.
func (s *AuthorService) Update(ctx context.Context, authorID string, req AuthorRequest) (*domain.Author, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, authorID)
	if err != nil {
		return nil, err
	}

	authorSlug := existing.Slug
	if req.Slug != "" {
		authorSlug, err = resolveSlug(req.Slug, req.Name)
		if err != nil {
			return nil, err
		}
	}

	author := &domain.Author{
		Timestamps:  existing.Timestamps,
		Name:        req.Name,
		Slug:        authorSlug,
		Email:       req.Email,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		SocialLinks: req.SocialLinks,
	}
	author.Touch()

	if err := s.store.Authors.Update(ctx, authorID, author); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, authorConflict(err)
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Author not found")
		}
		return nil, fmt.Errorf("update author: %w", err)
	}

	s.logger.Info("author updated", "author_id", authorID)
	return author, nil
}

// Delete removes an author. Posts keep their dangling author ID and
// render without a byline.
func (s *AuthorService) Delete(ctx context.Context, authorID string) error {
	if err := s.store.Authors.Delete(ctx, authorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Author not found")
		}
		return fmt.Errorf("delete author: %w", err)
	}

	s.logger.Info("author deleted", "author_id", authorID)
	return nil
}
