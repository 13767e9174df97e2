package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query string   // User's search text
	Types []string // Document types to include (empty = all)

	// Filters
	Genres        []string // Exact genre slugs, OR across values
	CategoryIDs   []string // Blog category filter, OR across values
	TagIDs        []string // Blog tag filter, OR across values
	PublishedOnly bool     // Hide unpublished blog posts
	MinYear       int
	MaxYear       int

	// Pagination
	Limit  int
	Offset int

	// Sorting: "relevance", "title", "recent", "year"
	SortBy    string
	SortOrder string // "asc", "desc"

	Highlight bool
}

// DefaultParams returns sensible defaults for public site search.
func DefaultParams() Params {
	return Params{
		Limit:         20,
		Offset:        0,
		SortBy:        "relevance",
		SortOrder:     "desc",
		PublishedOnly: true,
		Highlight:     true,
	}
}

// Result represents the search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit represents a single search result.
type Hit struct {
	ID         string            `json:"id"`
	Type       DocType           `json:"type"`
	Score      float64           `json:"score"`
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	Excerpt    string            `json:"excerpt,omitempty"`
	Director   string            `json:"director,omitempty"`
	Year       int               `json:"year,omitempty"`
	Genres     []string          `json:"genres,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Search executes a query against the index.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)
	addSorting(searchRequest, params)

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("title")
		searchRequest.Highlight.AddField("excerpt")
	}

	searchRequest.Fields = []string{
		"id", "type", "slug", "title", "excerpt", "director", "year", "genres",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if t, ok := hit.Fields["type"].(string); ok {
			h.Type = DocType(t)
		}
		if sl, ok := hit.Fields["slug"].(string); ok {
			h.Slug = sl
		}
		if ti, ok := hit.Fields["title"].(string); ok {
			h.Title = ti
		}
		if ex, ok := hit.Fields["excerpt"].(string); ok {
			h.Excerpt = ex
		}
		if d, ok := hit.Fields["director"].(string); ok {
			h.Director = d
		}
		if y, ok := hit.Fields["year"].(float64); ok {
			h.Year = int(y)
		}
		switch g := hit.Fields["genres"].(type) {
		case string:
			h.Genres = []string{g}
		case []interface{}:
			for _, v := range g {
				if gs, ok := v.(string); ok {
					h.Genres = append(h.Genres, gs)
				}
			}
		}

		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, h)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
//
// Text matching covers the title, description, blog body and cast and
// crew names, with the title boosted so a direct title match always
// ranks above an incidental mention in a description.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	if params.Query != "" {
		textQueries := []query.Query{}

		titleMatch := bleve.NewMatchQuery(params.Query)
		titleMatch.SetField("title")
		titleMatch.SetBoost(3.0)
		textQueries = append(textQueries, titleMatch)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		textQueries = append(textQueries, descMatch)

		contentMatch := bleve.NewMatchQuery(params.Query)
		contentMatch.SetField("content")
		textQueries = append(textQueries, contentMatch)

		directorMatch := bleve.NewMatchQuery(params.Query)
		directorMatch.SetField("director")
		directorMatch.SetBoost(1.5)
		textQueries = append(textQueries, directorMatch)

		starringMatch := bleve.NewMatchQuery(params.Query)
		starringMatch.SetField("starring")
		textQueries = append(textQueries, starringMatch)

		// Typo tolerance on the title.
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("title")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars).
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("title")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if len(params.Types) > 0 {
		typeQueries := make([]query.Query, len(params.Types))
		for i, t := range params.Types {
			tq := bleve.NewTermQuery(t)
			tq.SetField("type")
			typeQueries[i] = tq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(typeQueries...))
	}

	if len(params.Genres) > 0 {
		genreQueries := make([]query.Query, len(params.Genres))
		for i, g := range params.Genres {
			gq := bleve.NewTermQuery(g)
			gq.SetField("genres")
			genreQueries[i] = gq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(genreQueries...))
	}

	if len(params.CategoryIDs) > 0 {
		catQueries := make([]query.Query, len(params.CategoryIDs))
		for i, id := range params.CategoryIDs {
			cq := bleve.NewTermQuery(id)
			cq.SetField("category_ids")
			catQueries[i] = cq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(catQueries...))
	}

	if len(params.TagIDs) > 0 {
		tagQueries := make([]query.Query, len(params.TagIDs))
		for i, id := range params.TagIDs {
			tq := bleve.NewTermQuery(id)
			tq.SetField("tag_ids")
			tagQueries[i] = tq
		}
		queries = append(queries, bleve.NewDisjunctionQuery(tagQueries...))
	}

	if params.PublishedOnly {
		pq := bleve.NewBoolFieldQuery(true)
		pq.SetField("published")
		queries = append(queries, pq)
	}

	if params.MinYear > 0 || params.MaxYear > 0 {
		min := float64(params.MinYear)
		max := float64(params.MaxYear)
		if params.MaxYear == 0 {
			max = 3000 // Far future
		}
		rangeQuery := bleve.NewNumericRangeQuery(&min, &max)
		rangeQuery.SetField("year")
		queries = append(queries, rangeQuery)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// addSorting configures sort order on the request.
func addSorting(req *bleve.SearchRequest, params Params) {
	switch params.SortBy {
	case "title":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-title"})
		} else {
			req.SortBy([]string{"title"})
		}
	case "recent":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"created_at"})
		} else {
			req.SortBy([]string{"-created_at"})
		}
	case "year":
		if params.SortOrder == "asc" {
			req.SortBy([]string{"year", "title"})
		} else {
			req.SortBy([]string{"-year", "title"})
		}
	default:
		req.SortBy([]string{"-_score"})
	}
}
