package domain

import "time"

// ImageRef points at a stored image on the CDN together with its alt
// text. PublicID is what the CDN delete endpoint wants back.
type ImageRef struct {
	URL      string `json:"url"`
	Alt      string `json:"alt,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

// Blog is a long-form post. Content is stored as HTML produced by the
// admin editor. Slug is unique across all posts.
//
// CategoryIDs, TagIDs and AuthorID hold IDs of other documents. They
// are not enforced as foreign keys; deleting a category leaves the
// reference dangling and readers are expected to skip IDs that no
// longer resolve.
type Blog struct {
	Timestamps
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ShortDescription string     `json:"short_description"`
	Content          string     `json:"content"`
	ThumbnailImage   ImageRef   `json:"thumbnail_image"`
	BannerImage      ImageRef   `json:"banner_image"`
	CategoryIDs      []string   `json:"category_ids"`
	TagIDs           []string   `json:"tag_ids"`
	AuthorID         string     `json:"author_id"`
	Published        bool       `json:"published"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	ReadTime         int        `json:"read_time,omitempty"`
	MetaTitle        string     `json:"meta_title,omitempty"`
	MetaDescription  string     `json:"meta_description,omitempty"`
	MetaKeywords     string     `json:"meta_keywords,omitempty"`
}
