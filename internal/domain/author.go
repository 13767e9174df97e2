package domain

// SocialLinks collects an author's public profiles. All fields are
// optional URLs.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Author writes blog posts. Email and slug are unique across all
// authors.
type Author struct {
	Timestamps
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Email       string      `json:"email"`
	Bio         string      `json:"bio,omitempty"`
	Avatar      ImageRef    `json:"avatar"`
	SocialLinks SocialLinks `json:"social_links"`
}
