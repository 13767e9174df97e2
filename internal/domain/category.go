package domain

// Category groups blog posts by topic. Slug is unique.
type Category struct {
	Timestamps
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
