package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/framelightapp/framelight-server/internal/domain"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/id"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// BannerService owns the homepage hero banners.
type BannerService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBannerService creates a new banner service.
func NewBannerService(st *store.Store, validator *validation.Validator, logger *slog.Logger) *BannerService {
	return &BannerService{
		store:     st,
		validator: validator,
		logger:    logger,
	}
}

// BannerRequest is the payload for creating or replacing a banner.
// Only the image is required; a slide can be a bare visual.
type BannerRequest struct {
	Title         string `json:"title,omitempty" validate:"max=200"`
	Subtitle      string `json:"subtitle,omitempty" validate:"max=300"`
	Description   string `json:"description,omitempty" validate:"max=1000"`
	Platform      string `json:"platform,omitempty" validate:"max=120"`
	ImageURL      string `json:"image_url" validate:"required,url"`
	ImagePublicID string `json:"image_public_id,omitempty"`
	WatchNowLink  string `json:"watch_now_link,omitempty" validate:"omitempty,url"`
	LearnMoreLink string `json:"learn_more_link,omitempty" validate:"omitempty,url"`
	IsActive      bool   `json:"is_active"`
	Order         int    `json:"order" validate:"gte=0"`
}

// List returns banners ordered for display. With activeOnly the
// public site gets only the banners the carousel should rotate.
func (s *BannerService) List(ctx context.Context, activeOnly bool) ([]*domain.Banner, error) {
	banners, err := s.store.Banners.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}

	if activeOnly {
		active := banners[:0]
		for _, b := range banners {
			if b.IsActive {
				active = append(active, b)
			}
		}
		banners = active
	}

	sort.Slice(banners, func(i, j int) bool {
		if banners[i].Order != banners[j].Order {
			return banners[i].Order < banners[j].Order
		}
		return banners[i].CreatedAt.Before(banners[j].CreatedAt)
	})
	return banners, nil
}

// Get returns a banner by ID.
func (s *BannerService) Get(ctx context.Context, bannerID string) (*domain.Banner, error) {
	banner, err := s.store.Banners.Get(ctx, bannerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Banner not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return banner, nil
}

// Create validates and stores a new banner.
func (s *BannerService) Create(ctx context.Context, req BannerRequest) (*domain.Banner, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	bannerID, err := id.Generate("banner")
	if err != nil {
		return nil, fmt.Errorf("generate banner ID: %w", err)
	}

	banner := s.fromRequest(req)
	banner.ID = bannerID
	banner.InitTimestamps()

	if err := s.store.Banners.Create(ctx, bannerID, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.logger.Info("banner created", "banner_id", bannerID, "active", banner.IsActive)
	return banner, nil
}

// Update replaces an existing banner.
func (s *BannerService) Update(ctx context.Context, bannerID string, req BannerRequest) (*domain.Banner, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	banner := s.fromRequest(req)
	banner.Timestamps = existing.Timestamps
	banner.Touch()

	if err := s.store.Banners.Update(ctx, bannerID, banner); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Banner not found")
		}
		return nil, fmt.Errorf("update banner: %w", err)
	}

	s.logger.Info("banner updated", "banner_id", bannerID, "active", banner.IsActive)
	return banner, nil
}

// Delete removes a banner.
func (s *BannerService) Delete(ctx context.Context, bannerID string) error {
	if err := s.store.Banners.Delete(ctx, bannerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Banner not found")
		}
		return fmt.Errorf("delete banner: %w", err)
	}

	s.logger.Info("banner deleted", "banner_id", bannerID)
	return nil
}

func (s *BannerService) fromRequest(req BannerRequest) *domain.Banner {
	return &domain.Banner{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		Platform:      req.Platform,
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
		WatchNowLink:  req.WatchNowLink,
		LearnMoreLink: req.LearnMoreLink,
		IsActive:      req.IsActive,
		Order:         req.Order,
	}
}
