// Package search provides full-text search across the catalog using
// Bleve. Films, series and blog posts are indexed as one unified
// document type with type discrimination, enabling a single federated
// query over the whole site.
package search

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
)

// DocType represents the type of document in the unified index.
type DocType string

// Document types for the search index.
const (
	DocTypeFilm   DocType = "film"
	DocTypeSeries DocType = "series"
	DocTypeBlog   DocType = "blog"
)

// Document is the unified structure for the Bleve index. All
// searchable entities are indexed as Documents with a Type
// discriminator for result grouping and filtering.
type Document struct {
	ID   string  `json:"id"`
	Type DocType `json:"type"`
	Slug string  `json:"slug"`

	// Title is the film/series title or the blog post title.
	Title string `json:"title"`

	Description string `json:"description,omitempty"`

	// Film and series fields.
	Genres   []string `json:"genres,omitempty"`
	Director string   `json:"director,omitempty"`
	Starring string   `json:"starring,omitempty"`
	Year     int      `json:"year,omitempty"`

	// Blog fields. Content holds the post body reduced to plain text;
	// CategoryIDs and TagIDs are exact-match filters.
	Content     string   `json:"content,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	CategoryIDs []string `json:"category_ids,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
	Published   bool     `json:"published"`

	// Unix millis, for recency sorting.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve indexes Go struct field names by default (capitalized), but the
// index mapping uses lowercase names, so we convert explicitly.
func (d *Document) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"type":       string(d.Type),
		"slug":       d.Slug,
		"title":      d.Title,
		"published":  d.Published,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Director != "" {
		m["director"] = d.Director
	}
	if d.Starring != "" {
		m["starring"] = d.Starring
	}
	if d.Year > 0 {
		m["year"] = d.Year
	}
	if d.Content != "" {
		m["content"] = d.Content
	}
	if d.Excerpt != "" {
		m["excerpt"] = d.Excerpt
	}
	if len(d.Genres) > 0 {
		m["genres"] = d.Genres
	}
	if len(d.CategoryIDs) > 0 {
		m["category_ids"] = d.CategoryIDs
	}
	if len(d.TagIDs) > 0 {
		m["tag_ids"] = d.TagIDs
	}

	return m
}

// FilmToDocument converts a film to a search document.
func FilmToDocument(f *domain.Film) *Document {
	return &Document{
		ID:          f.ID,
		Type:        DocTypeFilm,
		Slug:        f.Slug,
		Title:       f.Title,
		Description: f.Description,
		Genres:      f.Genres,
		Director:    f.Director,
		Starring:    f.Starring,
		Year:        f.Year,
		Published:   true,
		CreatedAt:   f.CreatedAt.UnixMilli(),
		UpdatedAt:   f.UpdatedAt.UnixMilli(),
	}
}

// SeriesToDocument converts a series to a search document.
func SeriesToDocument(s *domain.Series) *Document {
	return &Document{
		ID:          s.ID,
		Type:        DocTypeSeries,
		Slug:        s.Slug,
		Title:       s.Title,
		Description: s.Description,
		Genres:      s.Genres,
		Director:    s.Director,
		Starring:    s.Starring,
		Year:        s.Year,
		Published:   true,
		CreatedAt:   s.CreatedAt.UnixMilli(),
		UpdatedAt:   s.UpdatedAt.UnixMilli(),
	}
}

// BlogToDocument converts a blog post to a search document. The HTML
// body from the editor is reduced to plain text for indexing so markup
// never matches a query.
func BlogToDocument(b *domain.Blog) *Document {
	content, err := htmltomarkdown.ConvertString(b.Content)
	if err != nil {
		// Unconvertible markup still gets indexed raw rather than not
		// at all.
		content = b.Content
	}

	return &Document{
		ID:          b.ID,
		Type:        DocTypeBlog,
		Slug:        b.Slug,
		Title:       b.Title,
		Content:     content,
		Excerpt:     b.ShortDescription,
		CategoryIDs: b.CategoryIDs,
		TagIDs:      b.TagIDs,
		Published:   b.Published,
		CreatedAt:   b.CreatedAt.UnixMilli(),
		UpdatedAt:   b.UpdatedAt.UnixMilli(),
	}
}
