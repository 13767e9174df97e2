package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search the catalog",
		Description: "Full text search over films, series and published blog posts",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains search query parameters.
type SearchInput struct {
	Query     string   `query:"q" doc:"Search text"`
	Types     []string `query:"types" doc:"Document types to include (film, series, blog)"`
	Genres    []string `query:"genres" doc:"Genre filter, OR across values"`
	MinYear   int      `query:"min_year" doc:"Earliest year to include"`
	MaxYear   int      `query:"max_year" doc:"Latest year to include"`
	SortBy    string   `query:"sort" doc:"relevance, title, recent or year"`
	SortOrder string   `query:"order" doc:"asc or desc"`
	Limit     int      `query:"limit" minimum:"1" maximum:"100" doc:"Result count"`
	Offset    int      `query:"offset" minimum:"0" doc:"Results to skip"`
	Highlight bool     `query:"highlight" doc:"Include match highlights"`
}

// SearchHit is one search result row.
type SearchHit struct {
	ID         string            `json:"id" doc:"Document ID"`
	Type       string            `json:"type" doc:"Document type"`
	Score      float64           `json:"score" doc:"Relevance score"`
	Slug       string            `json:"slug" doc:"URL-safe slug"`
	Title      string            `json:"title" doc:"Title"`
	Excerpt    string            `json:"excerpt,omitempty" doc:"Teaser text"`
	Director   string            `json:"director,omitempty" doc:"Director"`
	Year       int               `json:"year,omitempty" doc:"Year"`
	Genres     []string          `json:"genres,omitempty" doc:"Genres"`
	Highlights map[string]string `json:"highlights,omitempty" doc:"Match highlights by field"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Query  string      `json:"query" doc:"Echoed query"`
	Total  uint64      `json:"total" doc:"Total matching documents"`
	TookMs int64       `json:"took_ms" doc:"Search time in milliseconds"`
	Hits   []SearchHit `json:"hits" doc:"Result rows"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.Types = input.Types
	params.Genres = input.Genres
	params.MinYear = input.MinYear
	params.MaxYear = input.MaxYear
	params.Highlight = input.Highlight

	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	if input.Offset > 0 {
		params.Offset = input.Offset
	}
	if input.SortBy != "" {
		params.SortBy = input.SortBy
	}
	if input.SortOrder != "" {
		params.SortOrder = input.SortOrder
	}

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	hits := make([]SearchHit, len(result.Hits))
	for i, h := range result.Hits {
		hits[i] = SearchHit{
			ID:         h.ID,
			Type:       string(h.Type),
			Score:      h.Score,
			Slug:       h.Slug,
			Title:      h.Title,
			Excerpt:    h.Excerpt,
			Director:   h.Director,
			Year:       h.Year,
			Genres:     h.Genres,
			Highlights: h.Highlights,
		}
	}

	return &SearchOutput{
		Body: SearchResponse{
			Query:  result.Query,
			Total:  result.Total,
			TookMs: result.TookMs,
			Hits:   hits,
		},
	}, nil
}
