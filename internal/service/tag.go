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

// TagService owns blog tags.
type TagService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(st *store.Store, validator *validation.Validator, logger *slog.Logger) *TagService {
	return &TagService{
		store:     st,
		validator: validator,
		logger:    logger,
	}
}

// TagRequest is the payload for creating or replacing a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=80"`
	Slug string `json:"slug,omitempty"`
}

// List returns all tags sorted by name.
func (s *TagService) List(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.store.Tags.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

// Get returns a tag by ID.
func (s *TagService) Get(ctx context.Context, tagID string) (*domain.Tag, error) {
	tag, err := s.store.Tags.Get(ctx, tagID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Tag not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return tag, nil
}

// GetBySlug returns a tag by its URL slug.
func (s *TagService) GetBySlug(ctx context.Context, tagSlug string) (*domain.Tag, error) {
	tag, err := s.store.Tags.GetByIndex(ctx, "slug", tagSlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Tag not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get tag by slug: %w", err)
	}
	return tag, nil
}

// Create validates and stores a new tag.
func (s *TagService) Create(ctx context.Context, req TagRequest) (*domain.Tag, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	tagSlug, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	tagID, err := id.Generate("tag")
	if err != nil {
		return nil, fmt.Errorf("generate tag ID: %w", err)
	}

	tag := &domain.Tag{
		Name: req.Name,
		Slug: tagSlug,
	}
	tag.ID = tagID
	tag.InitTimestamps()

	if err := s.store.Tags.Create(ctx, tagID, tag); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, tagConflict(err)
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.logger.Info("tag created", "tag_id", tagID, "slug", tagSlug)
	return tag, nil
}

// Update replaces an existing tag.
func (s *TagService) Update(ctx context.Context, tagID string, req TagRequest) (*domain.Tag, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, tagID)
	if err != nil {
		return nil, err
	}

	tagSlug := existing.Slug
	if req.Slug != "" {
		tagSlug, err = resolveSlug(req.Slug, req.Name)
		if err != nil {
			return nil, err
		}
	}

	tag := &domain.Tag{
		Timestamps: existing.Timestamps,
		Name:       req.Name,
		Slug:       tagSlug,
	}
	tag.Touch()

	if err := s.store.Tags.Update(ctx, tagID, tag); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, tagConflict(err)
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Tag not found")
		}
		return nil, fmt.Errorf("update tag: %w", err)
	}

	s.logger.Info("tag updated", "tag_id", tagID, "slug", tagSlug)
	return tag, nil
}

// Delete removes a tag. Posts referencing it keep the dangling ID.
func (s *TagService) Delete(ctx context.Context, tagID string) error {
	if err := s.store.Tags.Delete(ctx, tagID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Tag not found")
		}
		return fmt.Errorf("delete tag: %w", err)
	}

	s.logger.Info("tag deleted", "tag_id", tagID)
	return nil
}

// tagConflict picks the user-facing message for a unique index
// violation on tags.
func tagConflict(err error) error {
	if store.ConflictIndex(err) == "name" {
		return domainerrors.AlreadyExists("Tag with this name already exists")
	}
	return domainerrors.AlreadyExists("Tag with this slug already exists")
}
