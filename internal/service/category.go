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

// CategoryService owns blog categories.
type CategoryService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(st *store.Store, validator *validation.Validator, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:     st,
		validator: validator,
		logger:    logger,
	}
}

// CategoryRequest is the payload for creating or replacing a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty" validate:"max=600"`
}

// List returns all categories sorted by name. Categories are few
// enough that the listing is never paged.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.store.Categories.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// Get returns a category by ID.
func (s *CategoryService) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.store.Categories.Get(ctx, categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// GetBySlug returns a category by its URL slug.
func (s *CategoryService) GetBySlug(ctx context.Context, categorySlug string) (*domain.Category, error) {
	category, err := s.store.Categories.GetByIndex(ctx, "slug", categorySlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return category, nil
}

// Create validates and stores a new category. The name is trimmed
// before anything else so " Drama " and "Drama" are the same category.
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	categorySlug, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	categoryID, err := id.Generate("category")
	if err != nil {
		return nil, fmt.Errorf("generate category ID: %w", err)
	}

	category := &domain.Category{
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
	}
	category.ID = categoryID
	category.InitTimestamps()

	if err := s.store.Categories.Create(ctx, categoryID, category); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, categoryConflict(err)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.Info("category created", "category_id", categoryID, "slug", categorySlug)
	return category, nil
}

// Update replaces an existing category.
func (s *CategoryService) Update(ctx context.Context, categoryID string, req CategoryRequest) (*domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	categorySlug := existing.Slug
	if req.Slug != "" {
		categorySlug, err = resolveSlug(req.Slug, req.Name)
		if err != nil {
			return nil, err
		}
	}

	category := &domain.Category{
		Timestamps:  existing.Timestamps,
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
	}
	category.Touch()

	if err := s.store.Categories.Update(ctx, categoryID, category); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, categoryConflict(err)
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Category not found")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.logger.Info("category updated", "category_id", categoryID, "slug", categorySlug)
	return category, nil
}

// Delete removes a category. Posts referencing it keep the dangling ID
// and simply stop showing the category.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	if err := s.store.Categories.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Category not found")
		}
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.Info("category deleted", "category_id", categoryID)
	return nil
}

// categoryConflict picks the user-facing message for a unique index
// violation on categories.
func categoryConflict(err error) error {
	if store.ConflictIndex(err) == "name" {
		return domainerrors.AlreadyExists("Category with this name already exists")
	}
	return domainerrors.AlreadyExists("Category with this slug already exists")
}
