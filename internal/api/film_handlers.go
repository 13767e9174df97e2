package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerFilmRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFilms",
		Method:      http.MethodGet,
		Path:        "/api/v1/films",
		Summary:     "List films",
		Description: "Returns one page of the film catalog, newest first",
		Tags:        []string{"Films"},
	}, s.handleListFilms)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createFilm",
		Method:        http.MethodPost,
		Path:          "/api/v1/films",
		Summary:       "Create film",
		Description:   "Creates a new film",
		Tags:          []string{"Films"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateFilm)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFilm",
		Method:      http.MethodGet,
		Path:        "/api/v1/films/{id}",
		Summary:     "Get film",
		Description: "Returns a film by ID",
		Tags:        []string{"Films"},
	}, s.handleGetFilm)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFilmBySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/films/slug/{slug}",
		Summary:     "Get film by slug",
		Description: "Returns a film by its URL slug",
		Tags:        []string{"Films"},
	}, s.handleGetFilmBySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateFilm",
		Method:      http.MethodPut,
		Path:        "/api/v1/films/{id}",
		Summary:     "Update film",
		Description: "Replaces a film",
		Tags:        []string{"Films"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateFilm)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteFilm",
		Method:      http.MethodDelete,
		Path:        "/api/v1/films/{id}",
		Summary:     "Delete film",
		Description: "Deletes a film",
		Tags:        []string{"Films"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteFilm)
}

// === DTOs ===

// FilmRequestBody is the request body for creating or replacing a film.
type FilmRequestBody struct {
	Title             string   `json:"title" doc:"Film title"`
	Year              int      `json:"year" doc:"Release year"`
	Duration          string   `json:"duration" doc:"Runtime, e.g. 1h 58m"`
	Genres            []string `json:"genres" doc:"Genres"`
	Description       string   `json:"description" doc:"Synopsis"`
	Starring          string   `json:"starring,omitempty" doc:"Principal cast"`
	Director          string   `json:"director,omitempty" doc:"Director"`
	Producers         string   `json:"producers,omitempty" doc:"Producers"`
	ProductionCompany string   `json:"production_company,omitempty" doc:"Production company"`
	TrailerURL        string   `json:"trailer_url,omitempty" doc:"Trailer URL"`
	StreamingURL      string   `json:"streaming_url,omitempty" doc:"Streaming URL"`
	Slug              string   `json:"slug,omitempty" doc:"Explicit slug; derived from the title when empty"`
	ImageURL          string   `json:"image_url,omitempty" doc:"Poster image URL"`
	ImagePublicID     string   `json:"image_public_id,omitempty" doc:"Poster CDN public ID"`
}

// FilmResponse contains film data in API responses.
type FilmResponse struct {
	ID                string    `json:"id" doc:"Film ID"`
	Title             string    `json:"title" doc:"Film title"`
	Year              int       `json:"year" doc:"Release year"`
	Duration          string    `json:"duration" doc:"Runtime"`
	Genres            []string  `json:"genres" doc:"Genres"`
	Description       string    `json:"description" doc:"Synopsis"`
	Starring          string    `json:"starring,omitempty" doc:"Principal cast"`
	Director          string    `json:"director,omitempty" doc:"Director"`
	Producers         string    `json:"producers,omitempty" doc:"Producers"`
	ProductionCompany string    `json:"production_company,omitempty" doc:"Production company"`
	TrailerURL        string    `json:"trailer_url,omitempty" doc:"Trailer URL"`
	StreamingURL      string    `json:"streaming_url,omitempty" doc:"Streaming URL"`
	Slug              string    `json:"slug" doc:"URL-safe slug"`
	ImageURL          string    `json:"image_url,omitempty" doc:"Poster image URL"`
	ImagePublicID     string    `json:"image_public_id,omitempty" doc:"Poster CDN public ID"`
	CreatedAt         time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt         time.Time `json:"updated_at" doc:"Last update time"`
}

// ListFilmsInput contains parameters for listing films.
type ListFilmsInput struct {
	Page   int    `query:"page" minimum:"1" doc:"Page number (1-based)"`
	Limit  int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size"`
	Search string `query:"search" doc:"Full-text query over title, description and credits"`
}

// ListFilmsResponse contains one page of films.
type ListFilmsResponse struct {
	Films      []FilmResponse     `json:"films" doc:"Films on this page"`
	Pagination PaginationResponse `json:"pagination" doc:"Page metadata"`
}

// ListFilmsOutput wraps the film listing for Huma.
type ListFilmsOutput struct {
	Body ListFilmsResponse
}

// CreateFilmInput wraps the create film request for Huma.
type CreateFilmInput struct {
	Authorization string `header:"Authorization"`
	Body          FilmRequestBody
}

// FilmOutput wraps the film response for Huma.
type FilmOutput struct {
	Body FilmResponse
}

// GetFilmInput contains parameters for getting a film.
type GetFilmInput struct {
	ID string `path:"id" doc:"Film ID"`
}

// GetFilmBySlugInput contains parameters for the slug lookup.
type GetFilmBySlugInput struct {
	Slug string `path:"slug" doc:"Film slug"`
}

// UpdateFilmInput wraps the update film request for Huma.
type UpdateFilmInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Film ID"`
	Body          FilmRequestBody
}

// DeleteFilmInput contains parameters for deleting a film.
type DeleteFilmInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Film ID"`
}

// === Handlers ===

func (s *Server) handleListFilms(ctx context.Context, input *ListFilmsInput) (*ListFilmsOutput, error) {
	films, meta, err := s.services.Film.List(ctx, service.FilmListParams{
		PageParams: pageParams(input.Page, input.Limit),
		Search:     input.Search,
	})
	if err != nil {
		return nil, err
	}

	resp := make([]FilmResponse, len(films))
	for i, f := range films {
		resp[i] = mapFilmResponse(f)
	}

	return &ListFilmsOutput{Body: ListFilmsResponse{Films: resp, Pagination: meta}}, nil
}

func (s *Server) handleCreateFilm(ctx context.Context, input *CreateFilmInput) (*FilmOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	film, err := s.services.Film.Create(ctx, filmRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &FilmOutput{Body: mapFilmResponse(film)}, nil
}

func (s *Server) handleGetFilm(ctx context.Context, input *GetFilmInput) (*FilmOutput, error) {
	film, err := s.services.Film.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &FilmOutput{Body: mapFilmResponse(film)}, nil
}

func (s *Server) handleGetFilmBySlug(ctx context.Context, input *GetFilmBySlugInput) (*FilmOutput, error) {
	film, err := s.services.Film.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	return &FilmOutput{Body: mapFilmResponse(film)}, nil
}

func (s *Server) handleUpdateFilm(ctx context.Context, input *UpdateFilmInput) (*FilmOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	film, err := s.services.Film.Update(ctx, input.ID, filmRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &FilmOutput{Body: mapFilmResponse(film)}, nil
}

func (s *Server) handleDeleteFilm(ctx context.Context, input *DeleteFilmInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Film.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Film deleted"}}, nil
}

func filmRequest(body FilmRequestBody) service.FilmRequest {
	return service.FilmRequest{
		Title:             body.Title,
		Year:              body.Year,
		Duration:          body.Duration,
		Genres:            body.Genres,
		Description:       body.Description,
		Starring:          body.Starring,
		Director:          body.Director,
		Producers:         body.Producers,
		ProductionCompany: body.ProductionCompany,
		TrailerURL:        body.TrailerURL,
		StreamingURL:      body.StreamingURL,
		Slug:              body.Slug,
		ImageURL:          body.ImageURL,
		ImagePublicID:     body.ImagePublicID,
	}
}

func mapFilmResponse(f *domain.Film) FilmResponse {
	return FilmResponse{
		ID:                f.ID,
		Title:             f.Title,
		Year:              f.Year,
		Duration:          f.Duration,
		Genres:            f.Genres,
		Description:       f.Description,
		Starring:          f.Starring,
		Director:          f.Director,
		Producers:         f.Producers,
		ProductionCompany: f.ProductionCompany,
		TrailerURL:        f.TrailerURL,
		StreamingURL:      f.StreamingURL,
		Slug:              f.Slug,
		ImageURL:          f.ImageURL,
		ImagePublicID:     f.ImagePublicID,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}
