package domain

// Banner is a homepage hero slide. Order controls the slide position,
// lowest first. Inactive banners stay in the store but are filtered out
// of the public listing.
type Banner struct {
	Timestamps
	Title         string `json:"title,omitempty"`
	Subtitle      string `json:"subtitle,omitempty"`
	Description   string `json:"description,omitempty"`
	Platform      string `json:"platform,omitempty"`
	ImageURL      string `json:"image_url"`
	ImagePublicID string `json:"image_public_id,omitempty"`
	WatchNowLink  string `json:"watch_now_link,omitempty"`
	LearnMoreLink string `json:"learn_more_link,omitempty"`
	IsActive      bool   `json:"is_active"`
	Order         int    `json:"order"`
}
