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
	"github.com/framelightapp/framelight-server/internal/search"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// SeriesService owns the series catalog.
type SeriesService struct {
	store     *store.Store
	search    *SearchService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewSeriesService creates a new series service.
func NewSeriesService(st *store.Store, search *SearchService, validator *validation.Validator, logger *slog.Logger) *SeriesService {
	return &SeriesService{
		store:     st,
		search:    search,
		validator: validator,
		logger:    logger,
	}
}

// SeriesRequest is the payload for creating or replacing a series.
type SeriesRequest struct {
	Title             string   `json:"title" validate:"required,max=300"`
	Year              int      `json:"year" validate:"required,gte=1888,lte=2100"`
	Seasons           int      `json:"seasons" validate:"required,gte=1"`
	Episodes          int      `json:"episodes" validate:"required,gte=1"`
	Status            string   `json:"status" validate:"required,oneof=ongoing completed upcoming"`
	Genres            []string `json:"genres" validate:"required,min=1,dive,required"`
	Description       string   `json:"description" validate:"required"`
	Starring          string   `json:"starring,omitempty"`
	Director          string   `json:"director,omitempty"`
	Producers         string   `json:"producers,omitempty"`
	ProductionCompany string   `json:"production_company,omitempty"`
	TrailerURL        string   `json:"trailer_url,omitempty" validate:"omitempty,url"`
	StreamingURL      string   `json:"streaming_url,omitempty" validate:"omitempty,url"`
	Slug              string   `json:"slug,omitempty"`
	ImageURL          string   `json:"image_url,omitempty" validate:"omitempty,url"`
	ImagePublicID     string   `json:"image_public_id,omitempty"`
}

// SeriesListParams filter the series listing. The zero value lists
// everything, newest first.
type SeriesListParams struct {
	store.PageParams

	// Search, when set, restricts the listing to full-text matches and
	// orders by relevance instead of recency.
	Search string
}

// List returns one page of series, newest first. With a search query
// the page holds the matching series in relevance order.
func (s *SeriesService) List(ctx context.Context, params SeriesListParams) ([]*domain.Series, store.Pagination, error) {
	params.Normalize()

	all, err := s.store.Series.All(ctx)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("list series: %w", err)
	}

	if params.Search != "" {
		ids, err := s.search.MatchIDs(ctx, search.DocTypeSeries, params.Search)
		if err != nil {
			return nil, store.Pagination{}, fmt.Errorf("search series: %w", err)
		}
		all = orderByRank(all, ids, func(sr *domain.Series) string { return sr.ID })
	} else {
		sort.Slice(all, func(i, j int) bool {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		})
	}

	page, meta := store.Page(all, params.PageParams)
	return page, meta, nil
}

// Get returns a series by ID.
func (s *SeriesService) Get(ctx context.Context, seriesID string) (*domain.Series, error) {
	series, err := s.store.Series.Get(ctx, seriesID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Series not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	return series, nil
}

// GetBySlug returns a series by its URL slug.
func (s *SeriesService) GetBySlug(ctx context.Context, seriesSlug string) (*domain.Series, error) {
	series, err := s.store.Series.GetByIndex(ctx, "slug", seriesSlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Series not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get series by slug: %w", err)
	}
	return series, nil
}

// Create validates and stores a new series.
func (s *SeriesService) Create(ctx context.Context, req SeriesRequest) (*domain.Series, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	seriesSlug, err := resolveSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	seriesID, err := id.Generate("series")
	if err != nil {
		return nil, fmt.Errorf("generate series ID: %w", err)
	}

	series := s.fromRequest(req, seriesSlug)
	series.ID = seriesID
	series.InitTimestamps()

	if err := s.store.Series.Create(ctx, seriesID, series); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Series with this slug already exists")
		}
		return nil, fmt.Errorf("create series: %w", err)
	}

	s.search.IndexSeries(series)

	s.logger.Info("series created", "series_id", seriesID, "slug", seriesSlug)
	return series, nil
}

// Update replaces an existing series, keeping the slug stable unless
// the request sends a new one.
func (s *SeriesService) Update(ctx context.Context, seriesID string, req SeriesRequest) (*domain.Series, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, seriesID)
	if err != nil {
		return nil, err
	}

	seriesSlug := existing.Slug
	if req.Slug != "" {
		seriesSlug, err = resolveSlug(req.Slug, req.Title)
		if err != nil {
			return nil, err
		}
	}

	series := s.fromRequest(req, seriesSlug)
	series.Timestamps = existing.Timestamps
	series.Touch()

	if err := s.store.Series.Update(ctx, seriesID, series); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Series with this slug already exists")
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Series not found")
		}
		return nil, fmt.Errorf("update series: %w", err)
	}

	s.search.IndexSeries(series)

	s.logger.Info("series updated", "series_id", seriesID, "slug", seriesSlug)
	return series, nil
}

// Delete removes a series.
func (s *SeriesService) Delete(ctx context.Context, seriesID string) error {
	if err := s.store.Series.Delete(ctx, seriesID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Series not found")
		}
		return fmt.Errorf("delete series: %w", err)
	}

	s.search.Remove(seriesID)

	s.logger.Info("series deleted", "series_id", seriesID)
	return nil
}

func (s *SeriesService) fromRequest(req SeriesRequest, seriesSlug string) *domain.Series {
	return &domain.Series{
		Title:             req.Title,
		Year:              req.Year,
		Seasons:           req.Seasons,
		Episodes:          req.Episodes,
		Status:            domain.SeriesStatus(req.Status),
		Genres:            req.Genres,
		Description:       req.Description,
		Starring:          req.Starring,
		Director:          req.Director,
		Producers:         req.Producers,
		ProductionCompany: req.ProductionCompany,
		TrailerURL:        req.TrailerURL,
		StreamingURL:      req.StreamingURL,
		Slug:              seriesSlug,
		ImageURL:          req.ImageURL,
		ImagePublicID:     req.ImagePublicID,
	}
}
