package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerBannerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBanners",
		Method:      http.MethodGet,
		Path:        "/api/v1/banners",
		Summary:     "List banners",
		Description: "Returns banners in display order; active=true keeps only live ones",
		Tags:        []string{"Banners"},
	}, s.handleListBanners)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createBanner",
		Method:        http.MethodPost,
		Path:          "/api/v1/banners",
		Summary:       "Create banner",
		Description:   "Creates a new banner",
		Tags:          []string{"Banners"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateBanner)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBanner",
		Method:      http.MethodGet,
		Path:        "/api/v1/banners/{id}",
		Summary:     "Get banner",
		Description: "Returns a banner by ID",
		Tags:        []string{"Banners"},
	}, s.handleGetBanner)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBanner",
		Method:      http.MethodPut,
		Path:        "/api/v1/banners/{id}",
		Summary:     "Update banner",
		Description: "Replaces a banner",
		Tags:        []string{"Banners"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateBanner)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBanner",
		Method:      http.MethodDelete,
		Path:        "/api/v1/banners/{id}",
		Summary:     "Delete banner",
		Description: "Deletes a banner",
		Tags:        []string{"Banners"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteBanner)
}

// === DTOs ===

// BannerRequestBody is the request body for creating or replacing a
// banner.
type BannerRequestBody struct {
	Title         string `json:"title,omitempty" doc:"Banner headline"`
	Subtitle      string `json:"subtitle,omitempty" doc:"Subheading"`
	Description   string `json:"description,omitempty" doc:"Longer copy"`
	Platform      string `json:"platform,omitempty" doc:"Release platform, e.g. a streamer or theatrical"`
	ImageURL      string `json:"image_url" doc:"Banner image URL"`
	ImagePublicID string `json:"image_public_id,omitempty" doc:"Banner CDN public ID"`
	WatchNowLink  string `json:"watch_now_link,omitempty" doc:"Watch now call to action URL"`
	LearnMoreLink string `json:"learn_more_link,omitempty" doc:"Learn more call to action URL"`
	IsActive      bool   `json:"is_active" doc:"Whether the carousel shows the banner"`
	Order         int    `json:"order" doc:"Display order, lowest first"`
}

// BannerResponse contains banner data in API responses.
type BannerResponse struct {
	ID            string    `json:"id" doc:"Banner ID"`
	Title         string    `json:"title,omitempty" doc:"Banner headline"`
	Subtitle      string    `json:"subtitle,omitempty" doc:"Subheading"`
	Description   string    `json:"description,omitempty" doc:"Longer copy"`
	Platform      string    `json:"platform,omitempty" doc:"Release platform"`
	ImageURL      string    `json:"image_url" doc:"Banner image URL"`
	ImagePublicID string    `json:"image_public_id,omitempty" doc:"Banner CDN public ID"`
	WatchNowLink  string    `json:"watch_now_link,omitempty" doc:"Watch now call to action URL"`
	LearnMoreLink string    `json:"learn_more_link,omitempty" doc:"Learn more call to action URL"`
	IsActive      bool      `json:"is_active" doc:"Whether the carousel shows the banner"`
	Order         int       `json:"order" doc:"Display order"`
	CreatedAt     time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt     time.Time `json:"updated_at" doc:"Last update time"`
}

// ListBannersInput contains parameters for listing banners.
type ListBannersInput struct {
	Active bool `query:"active" doc:"Keep only active banners"`
}

// ListBannersResponse contains banners in display order.
type ListBannersResponse struct {
	Banners []BannerResponse `json:"banners" doc:"Banners in display order"`
}

// ListBannersOutput wraps the banner listing for Huma.
type ListBannersOutput struct {
	Body ListBannersResponse
}

// CreateBannerInput wraps the create banner request for Huma.
type CreateBannerInput struct {
	Authorization string `header:"Authorization"`
	Body          BannerRequestBody
}

// BannerOutput wraps the banner response for Huma.
type BannerOutput struct {
	Body BannerResponse
}

// GetBannerInput contains parameters for getting a banner.
type GetBannerInput struct {
	ID string `path:"id" doc:"Banner ID"`
}

// UpdateBannerInput wraps the update banner request for Huma.
type UpdateBannerInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Banner ID"`
	Body          BannerRequestBody
}

// DeleteBannerInput contains parameters for deleting a banner.
type DeleteBannerInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Banner ID"`
}

// === Handlers ===

func (s *Server) handleListBanners(ctx context.Context, input *ListBannersInput) (*ListBannersOutput, error) {
	banners, err := s.services.Banner.List(ctx, input.Active)
	if err != nil {
		return nil, err
	}

	resp := make([]BannerResponse, len(banners))
	for i, b := range banners {
		resp[i] = mapBannerResponse(b)
	}

	return &ListBannersOutput{Body: ListBannersResponse{Banners: resp}}, nil
}

func (s *Server) handleCreateBanner(ctx context.Context, input *CreateBannerInput) (*BannerOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	banner, err := s.services.Banner.Create(ctx, bannerRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &BannerOutput{Body: mapBannerResponse(banner)}, nil
}

func (s *Server) handleGetBanner(ctx context.Context, input *GetBannerInput) (*BannerOutput, error) {
	banner, err := s.services.Banner.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &BannerOutput{Body: mapBannerResponse(banner)}, nil
}

func (s *Server) handleUpdateBanner(ctx context.Context, input *UpdateBannerInput) (*BannerOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	banner, err := s.services.Banner.Update(ctx, input.ID, bannerRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &BannerOutput{Body: mapBannerResponse(banner)}, nil
}

func (s *Server) handleDeleteBanner(ctx context.Context, input *DeleteBannerInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Banner.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Banner deleted"}}, nil
}

func bannerRequest(body BannerRequestBody) service.BannerRequest {
	return service.BannerRequest{
		Title:         body.Title,
		Subtitle:      body.Subtitle,
		Description:   body.Description,
		Platform:      body.Platform,
		ImageURL:      body.ImageURL,
		ImagePublicID: body.ImagePublicID,
		WatchNowLink:  body.WatchNowLink,
		LearnMoreLink: body.LearnMoreLink,
		IsActive:      body.IsActive,
		Order:         body.Order,
	}
}

func mapBannerResponse(b *domain.Banner) BannerResponse {
	return BannerResponse{
		ID:            b.ID,
		Title:         b.Title,
		Subtitle:      b.Subtitle,
		Description:   b.Description,
		Platform:      b.Platform,
		ImageURL:      b.ImageURL,
		ImagePublicID: b.ImagePublicID,
		WatchNowLink:  b.WatchNowLink,
		LearnMoreLink: b.LearnMoreLink,
		IsActive:      b.IsActive,
		Order:         b.Order,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
