// Package service contains the application services sitting between the
// HTTP handlers and the store. Services own validation, slug
// derivation, search indexing and the business rules of each
// collection.
package service

import (
	"context"
	"log/slog"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/search"
	"github.com/framelightapp/framelight-server/internal/store"
)

// SearchService owns the full-text index. Content services call the
// index hooks after every write; index failures are logged, never
// surfaced, because search lagging behind the store beats a failed
// save.
type SearchService struct {
	index  *search.Index
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.Index, st *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		store:  st,
		logger: logger,
	}
}

// maxSearchMatches caps how many ranked IDs a list search considers.
const maxSearchMatches = 500

// MatchIDs returns the IDs of documents of the given type matching the
// query, best match first. Backs the list endpoints' search parameter.
func (s *SearchService) MatchIDs(ctx context.Context, docType search.DocType, query string) ([]string, error) {
	result, err := s.index.Search(ctx, search.Params{
		Query:     query,
		Types:     []string{string(docType)},
		Limit:     maxSearchMatches,
		SortBy:    "relevance",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(result.Hits))
	for i, hit := range result.Hits {
		ids[i] = hit.ID
	}
	return ids, nil
}

// Search runs a federated query across films, series and blog posts.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > store.MaxLimit {
		params.Limit = store.MaxLimit
	}
	return s.index.Search(ctx, params)
}

// IndexFilm upserts a film into the index. Best effort.
func (s *SearchService) IndexFilm(f *domain.Film) {
	if err := s.index.IndexDocument(search.FilmToDocument(f)); err != nil {
		s.logger.Warn("failed to index film", "film_id", f.ID, "error", err)
	}
}

// IndexSeries upserts a series into the index. Best effort.
func (s *SearchService) IndexSeries(sr *domain.Series) {
	if err := s.index.IndexDocument(search.SeriesToDocument(sr)); err != nil {
		s.logger.Warn("failed to index series", "series_id", sr.ID, "error", err)
	}
}

// IndexBlog upserts a blog post into the index. Best effort.
func (s *SearchService) IndexBlog(b *domain.Blog) {
	if err := s.index.IndexDocument(search.BlogToDocument(b)); err != nil {
		s.logger.Warn("failed to index blog", "blog_id", b.ID, "error", err)
	}
}

// Remove drops a document from the index. Best effort.
func (s *SearchService) Remove(id string) {
	if err := s.index.DeleteDocument(id); err != nil {
		s.logger.Warn("failed to remove from index", "id", id, "error", err)
	}
}

// ReindexAll rebuilds the index from the store. Called on startup so
// the index always reflects the current data even after a mapping
// change wiped it.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	var docs []*search.Document

	films, err := s.store.Films.All(ctx)
	if err != nil {
		return err
	}
	for _, f := range films {
		docs = append(docs, search.FilmToDocument(f))
	}

	series, err := s.store.Series.All(ctx)
	if err != nil {
		return err
	}
	for _, sr := range series {
		docs = append(docs, search.SeriesToDocument(sr))
	}

	blogs, err := s.store.Blogs.All(ctx)
	if err != nil {
		return err
	}
	for _, b := range blogs {
		docs = append(docs, search.BlogToDocument(b))
	}

	if err := s.index.IndexDocuments(docs); err != nil {
		return err
	}

	s.logger.Info("search reindex complete", "documents", len(docs))
	return nil
}
