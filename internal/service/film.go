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
	"github.com/framelightapp/framelight-server/internal/slug"
	"github.com/framelightapp/framelight-server/internal/store"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// FilmService owns the film catalog.
type FilmService struct {
	store     *store.Store
	search    *SearchService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewFilmService creates a new film service.
func NewFilmService(st *store.Store, search *SearchService, validator *validation.Validator, logger *slog.Logger) *FilmService {
	return &FilmService{
		store:     st,
		search:    search,
		validator: validator,
		logger:    logger,
	}
}

// FilmRequest is the payload for creating or replacing a film.
type FilmRequest struct {
	Title             string   `json:"title" validate:"required,max=300"`
	Year              int      `json:"year" validate:"required,gte=1888,lte=2100"`
	Duration          string   `json:"duration" validate:"required,max=50"`
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

// FilmListParams filter the film listing. The zero value lists
// everything, newest first.
type FilmListParams struct {
	store.PageParams

	// Search, when set, restricts the listing to full-text matches and
	// orders by relevance instead of recency.
	Search string
}

// List returns one page of films, newest first. With a search query the
// page holds the matching films in relevance order.
func (s *FilmService) List(ctx context.Context, params FilmListParams) ([]*domain.Film, store.Pagination, error) {
	params.Normalize()

	films, err := s.store.Films.All(ctx)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("list films: %w", err)
	}

	if params.Search != "" {
		ids, err := s.search.MatchIDs(ctx, search.DocTypeFilm, params.Search)
		if err != nil {
			return nil, store.Pagination{}, fmt.Errorf("search films: %w", err)
		}
		films = orderByRank(films, ids, func(f *domain.Film) string { return f.ID })
	} else {
		sort.Slice(films, func(i, j int) bool {
			return films[i].CreatedAt.After(films[j].CreatedAt)
		})
	}

	page, meta := store.Page(films, params.PageParams)
	return page, meta, nil
}

// Get returns a film by ID.
func (s *FilmService) Get(ctx context.Context, filmID string) (*domain.Film, error) {
	film, err := s.store.Films.Get(ctx, filmID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Film not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	return film, nil
}

// GetBySlug returns a film by its URL slug.
func (s *FilmService) GetBySlug(ctx context.Context, filmSlug string) (*domain.Film, error) {
	film, err := s.store.Films.GetByIndex(ctx, "slug", filmSlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("Film not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get film by slug: %w", err)
	}
	return film, nil
}

// Create validates and stores a new film. The slug is derived from the
// title when the request leaves it empty.
func (s *FilmService) Create(ctx context.Context, req FilmRequest) (*domain.Film, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	filmSlug, err := resolveSlug(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	filmID, err := id.Generate("film")
	if err != nil {
		return nil, fmt.Errorf("generate film ID: %w", err)
	}

	film := &domain.Film{
		Title:             req.Title,
		Year:              req.Year,
		Duration:          req.Duration,
		Genres:            req.Genres,
		Description:       req.Description,
		Starring:          req.Starring,
		Director:          req.Director,
		Producers:         req.Producers,
		ProductionCompany: req.ProductionCompany,
		TrailerURL:        req.TrailerURL,
		StreamingURL:      req.StreamingURL,
		Slug:              filmSlug,
		ImageURL:          req.ImageURL,
		ImagePublicID:     req.ImagePublicID,
	}
	film.ID = filmID
	film.InitTimestamps()

	if err := s.store.Films.Create(ctx, filmID, film); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Film with this slug already exists")
		}
		return nil, fmt.Errorf("create film: %w", err)
	}

	s.search.IndexFilm(film)

	s.logger.Info("film created", "film_id", filmID, "slug", filmSlug)
	return film, nil
}

// Update replaces an existing film. Changing the title without sending
// a slug keeps the old slug stable so published URLs don't break.
func (s *FilmService) Update(ctx context.Context, filmID string, req FilmRequest) (*domain.Film, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, filmID)
	if err != nil {
		return nil, err
	}

	filmSlug := existing.Slug
	if req.Slug != "" {
		filmSlug, err = resolveSlug(req.Slug, req.Title)
		if err != nil {
			return nil, err
		}
	}

	film := &domain.Film{
		Timestamps:        existing.Timestamps,
		Title:             req.Title,
		Year:              req.Year,
		Duration:          req.Duration,
		Genres:            req.Genres,
		Description:       req.Description,
		Starring:          req.Starring,
		Director:          req.Director,
		Producers:         req.Producers,
		ProductionCompany: req.ProductionCompany,
		TrailerURL:        req.TrailerURL,
		StreamingURL:      req.StreamingURL,
		Slug:              filmSlug,
		ImageURL:          req.ImageURL,
		ImagePublicID:     req.ImagePublicID,
	}
	film.Touch()

	if err := s.store.Films.Update(ctx, filmID, film); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("Film with this slug already exists")
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Film not found")
		}
		return nil, fmt.Errorf("update film: %w", err)
	}

	s.search.IndexFilm(film)

	s.logger.Info("film updated", "film_id", filmID, "slug", filmSlug)
	return film, nil
}

// Delete removes a film. References from other collections are left
// alone; nothing links to films by ID today and the CDN asset stays
// until the admin removes it explicitly.
func (s *FilmService) Delete(ctx context.Context, filmID string) error {
	if err := s.store.Films.Delete(ctx, filmID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("Film not found")
		}
		return fmt.Errorf("delete film: %w", err)
	}

	s.search.Remove(filmID)

	s.logger.Info("film deleted", "film_id", filmID)
	return nil
}

// resolveSlug returns the explicit slug when given, otherwise derives
// one from the title. An input that normalizes to nothing is a
// validation error.
func resolveSlug(explicit, title string) (string, error) {
	source := explicit
	if source == "" {
		source = title
	}

	normalized := slug.Make(source)
	if normalized == "" {
		return "", domainerrors.Validationf("cannot derive a slug from %q", source)
	}
	return normalized, nil
}

// orderByRank keeps only the items whose ID appears in ids, ordered the
// way ids are ordered.
func orderByRank[T any](items []T, ids []string, idOf func(T) string) []T {
	pos := make(map[string]int, len(ids))
	for i, itemID := range ids {
		pos[itemID] = i
	}

	kept := items[:0]
	for _, item := range items {
		if _, ok := pos[idOf(item)]; ok {
			kept = append(kept, item)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return pos[idOf(kept[i])] < pos[idOf(kept[j])]
	})
	return kept
}
