package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerSeriesRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSeries",
		Method:      http.MethodGet,
		Path:        "/api/v1/series",
		Summary:     "List series",
		Description: "Returns one page of the series catalog, newest first",
		Tags:        []string{"Series"},
	}, s.handleListSeries)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createSeries",
		Method:        http.MethodPost,
		Path:          "/api/v1/series",
		Summary:       "Create series",
		Description:   "Creates a new series",
		Tags:          []string{"Series"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateSeries)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSeries",
		Method:      http.MethodGet,
		Path:        "/api/v1/series/{id}",
		Summary:     "Get series",
		Description: "Returns a series by ID",
		Tags:        []string{"Series"},
	}, s.handleGetSeries)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSeriesBySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/series/slug/{slug}",
		Summary:     "Get series by slug",
		Description: "Returns a series by its URL slug",
		Tags:        []string{"Series"},
	}, s.handleGetSeriesBySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateSeries",
		Method:      http.MethodPut,
		Path:        "/api/v1/series/{id}",
		Summary:     "Update series",
		Description: "Replaces a series",
		Tags:        []string{"Series"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateSeries)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteSeries",
		Method:      http.MethodDelete,
		Path:        "/api/v1/series/{id}",
		Summary:     "Delete series",
		Description: "Deletes a series",
		Tags:        []string{"Series"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteSeries)
}

// === DTOs ===

// SeriesRequestBody is the request body for creating or replacing a
// series.
type SeriesRequestBody struct {
	Title             string   `json:"title" doc:"Series title"`
	Year              int      `json:"year" doc:"First air year"`
	Seasons           int      `json:"seasons" doc:"Season count"`
	Episodes          int      `json:"episodes" doc:"Episode count"`
	Status            string   `json:"status" doc:"ongoing, completed or upcoming"`
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

// SeriesResponse contains series data in API responses.
type SeriesResponse struct {
	ID                string    `json:"id" doc:"Series ID"`
	Title             string    `json:"title" doc:"Series title"`
	Year              int       `json:"year" doc:"First air year"`
	Seasons           int       `json:"seasons" doc:"Season count"`
	Episodes          int       `json:"episodes" doc:"Episode count"`
	Status            string    `json:"status" doc:"Broadcast status"`
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

// ListSeriesInput contains parameters for listing series.
type ListSeriesInput struct {
	Page   int    `query:"page" minimum:"1" doc:"Page number (1-based)"`
	Limit  int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size"`
	Search string `query:"search" doc:"Full-text query over title, description and credits"`
}

// ListSeriesResponse contains one page of series.
type ListSeriesResponse struct {
	Series     []SeriesResponse   `json:"series" doc:"Series on this page"`
	Pagination PaginationResponse `json:"pagination" doc:"Page metadata"`
}

// ListSeriesOutput wraps the series listing for Huma.
type ListSeriesOutput struct {
	Body ListSeriesResponse
}

// CreateSeriesInput wraps the create series request for Huma.
type CreateSeriesInput struct {
	Authorization string `header:"Authorization"`
	Body          SeriesRequestBody
}

// SeriesOutput wraps the series response for Huma.
type SeriesOutput struct {
	Body SeriesResponse
}

// GetSeriesInput contains parameters for getting a series.
type GetSeriesInput struct {
	ID string `path:"id" doc:"Series ID"`
}

// GetSeriesBySlugInput contains parameters for the slug lookup.
type GetSeriesBySlugInput struct {
	Slug string `path:"slug" doc:"Series slug"`
}

// UpdateSeriesInput wraps the update series request for Huma.
type UpdateSeriesInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Series ID"`
	Body          SeriesRequestBody
}

// DeleteSeriesInput contains parameters for deleting a series.
type DeleteSeriesInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Series ID"`
}

// === Handlers ===

func (s *Server) handleListSeries(ctx context.Context, input *ListSeriesInput) (*ListSeriesOutput, error) {
	series, meta, err := s.services.Series.List(ctx, service.SeriesListParams{
		PageParams: pageParams(input.Page, input.Limit),
		Search:     input.Search,
	})
	if err != nil {
		return nil, err
	}

	resp := make([]SeriesResponse, len(series))
	for i, sr := range series {
		resp[i] = mapSeriesResponse(sr)
	}

	return &ListSeriesOutput{Body: ListSeriesResponse{Series: resp, Pagination: meta}}, nil
}

func (s *Server) handleCreateSeries(ctx context.Context, input *CreateSeriesInput) (*SeriesOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	series, err := s.services.Series.Create(ctx, seriesRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &SeriesOutput{Body: mapSeriesResponse(series)}, nil
}

func (s *Server) handleGetSeries(ctx context.Context, input *GetSeriesInput) (*SeriesOutput, error) {
	series, err := s.services.Series.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &SeriesOutput{Body: mapSeriesResponse(series)}, nil
}

func (s *Server) handleGetSeriesBySlug(ctx context.Context, input *GetSeriesBySlugInput) (*SeriesOutput, error) {
	series, err := s.services.Series.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	return &SeriesOutput{Body: mapSeriesResponse(series)}, nil
}

func (s *Server) handleUpdateSeries(ctx context.Context, input *UpdateSeriesInput) (*SeriesOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	series, err := s.services.Series.Update(ctx, input.ID, seriesRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &SeriesOutput{Body: mapSeriesResponse(series)}, nil
}

func (s *Server) handleDeleteSeries(ctx context.Context, input *DeleteSeriesInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Series.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Series deleted"}}, nil
}

func seriesRequest(body SeriesRequestBody) service.SeriesRequest {
	return service.SeriesRequest{
		Title:             body.Title,
		Year:              body.Year,
		Seasons:           body.Seasons,
		Episodes:          body.Episodes,
		Status:            body.Status,
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

func mapSeriesResponse(sr *domain.Series) SeriesResponse {
	return SeriesResponse{
		ID:                sr.ID,
		Title:             sr.Title,
		Year:              sr.Year,
		Seasons:           sr.Seasons,
		Episodes:          sr.Episodes,
		Status:            string(sr.Status),
		Genres:            sr.Genres,
		Description:       sr.Description,
		Starring:          sr.Starring,
		Director:          sr.Director,
		Producers:         sr.Producers,
		ProductionCompany: sr.ProductionCompany,
		TrailerURL:        sr.TrailerURL,
		StreamingURL:      sr.StreamingURL,
		Slug:              sr.Slug,
		ImageURL:          sr.ImageURL,
		ImagePublicID:     sr.ImagePublicID,
		CreatedAt:         sr.CreatedAt,
		UpdatedAt:         sr.UpdatedAt,
	}
}
