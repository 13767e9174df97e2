package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for search documents.
//
// The mapping is designed with these priorities:
//  1. Fast full-text search on titles with English stemming
//  2. Exact keyword matching for type, genre and blog taxonomy filters
//  3. Numeric range queries for release year
//  4. Term vectors on the title field for highlighting
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	// Title is the primary search target.
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = en.AnalyzerName
	titleFieldMapping.Store = true
	titleFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("title", titleFieldMapping)

	// Description - searchable but not stored (too large)
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// Blog body, already reduced to plain text. Searchable, not stored.
	contentFieldMapping := bleve.NewTextFieldMapping()
	contentFieldMapping.Analyzer = en.AnalyzerName
	contentFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("content", contentFieldMapping)

	excerptFieldMapping := bleve.NewTextFieldMapping()
	excerptFieldMapping.Analyzer = en.AnalyzerName
	excerptFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("excerpt", excerptFieldMapping)

	// Cast and crew names.
	directorFieldMapping := bleve.NewTextFieldMapping()
	directorFieldMapping.Analyzer = en.AnalyzerName
	directorFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("director", directorFieldMapping)

	starringFieldMapping := bleve.NewTextFieldMapping()
	starringFieldMapping.Analyzer = en.AnalyzerName
	starringFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("starring", starringFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	typeFieldMapping := bleve.NewTextFieldMapping()
	typeFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("type", typeFieldMapping)

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	slugFieldMapping := bleve.NewTextFieldMapping()
	slugFieldMapping.Analyzer = keyword.Name
	slugFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("slug", slugFieldMapping)

	// Genres keep compound values intact (e.g., "science-fiction").
	genresFieldMapping := bleve.NewTextFieldMapping()
	genresFieldMapping.Analyzer = keyword.Name
	genresFieldMapping.Store = true
	genresFieldMapping.IncludeTermVectors = true // For faceting
	docMapping.AddFieldMappingsAt("genres", genresFieldMapping)

	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("category_ids", categoryFieldMapping)

	tagFieldMapping := bleve.NewTextFieldMapping()
	tagFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("tag_ids", tagFieldMapping)

	// --- Boolean and numeric fields ---

	publishedFieldMapping := bleve.NewBooleanFieldMapping()
	publishedFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("published", publishedFieldMapping)

	yearFieldMapping := bleve.NewNumericFieldMapping()
	yearFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("year", yearFieldMapping)

	createdAtFieldMapping := bleve.NewNumericFieldMapping()
	createdAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("created_at", createdAtFieldMapping)

	updatedAtFieldMapping := bleve.NewNumericFieldMapping()
	updatedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("updated_at", updatedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
