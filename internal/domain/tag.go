package domain

// Tag is a free-form label attached to blog posts. Slug is unique.
type Tag struct {
	Timestamps
	Name string `json:"name"`
	Slug string `json:"slug"`
}
