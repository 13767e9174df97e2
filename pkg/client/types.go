package client

import "time"

// Pagination describes one page of a listing.
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Pages       int  `json:"pages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ImageRef points at an image stored on the CDN.
type ImageRef struct {
	URL      string `json:"url"`
	Alt      string `json:"alt,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

// SocialLinks are an author's public profiles.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// User is a signed-in admin account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult carries the access token and the signed-in admin.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	User      User   `json:"user"`
}

// Film is one title in the film catalog.
type Film struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Year              int       `json:"year"`
	Duration          string    `json:"duration"`
	Genres            []string  `json:"genres"`
	Description       string    `json:"description"`
	Starring          string    `json:"starring,omitempty"`
	Director          string    `json:"director,omitempty"`
	Producers         string    `json:"producers,omitempty"`
	ProductionCompany string    `json:"production_company,omitempty"`
	TrailerURL        string    `json:"trailer_url,omitempty"`
	StreamingURL      string    `json:"streaming_url,omitempty"`
	Slug              string    `json:"slug"`
	ImageURL          string    `json:"image_url,omitempty"`
	ImagePublicID     string    `json:"image_public_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FilmRequest is the payload for creating or replacing a film.
type FilmRequest struct {
	Title             string   `json:"title"`
	Year              int      `json:"year"`
	Duration          string   `json:"duration"`
	Genres            []string `json:"genres"`
	Description       string   `json:"description"`
	Starring          string   `json:"starring,omitempty"`
	Director          string   `json:"director,omitempty"`
	Producers         string   `json:"producers,omitempty"`
	ProductionCompany string   `json:"production_company,omitempty"`
	TrailerURL        string   `json:"trailer_url,omitempty"`
	StreamingURL      string   `json:"streaming_url,omitempty"`
	Slug              string   `json:"slug,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	ImagePublicID     string   `json:"image_public_id,omitempty"`
}

// FilmPage is one page of films.
type FilmPage struct {
	Films      []Film     `json:"films"`
	Pagination Pagination `json:"pagination"`
}

// Series is one title in the series catalog.
type Series struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Year              int       `json:"year"`
	Seasons           int       `json:"seasons"`
	Episodes          int       `json:"episodes"`
	Status            string    `json:"status"`
	Genres            []string  `json:"genres"`
	Description       string    `json:"description"`
	Starring          string    `json:"starring,omitempty"`
	Director          string    `json:"director,omitempty"`
	Producers         string    `json:"producers,omitempty"`
	ProductionCompany string    `json:"production_company,omitempty"`
	TrailerURL        string    `json:"trailer_url,omitempty"`
	StreamingURL      string    `json:"streaming_url,omitempty"`
	Slug              string    `json:"slug"`
	ImageURL          string    `json:"image_url,omitempty"`
	ImagePublicID     string    `json:"image_public_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SeriesRequest is the payload for creating or replacing a series.
type SeriesRequest struct {
	Title             string   `json:"title"`
	Year              int      `json:"year"`
	Seasons           int      `json:"seasons"`
	Episodes          int      `json:"episodes"`
	Status            string   `json:"status"`
	Genres            []string `json:"genres"`
	Description       string   `json:"description"`
	Starring          string   `json:"starring,omitempty"`
	Director          string   `json:"director,omitempty"`
	Producers         string   `json:"producers,omitempty"`
	ProductionCompany string   `json:"production_company,omitempty"`
	TrailerURL        string   `json:"trailer_url,omitempty"`
	StreamingURL      string   `json:"streaming_url,omitempty"`
	Slug              string   `json:"slug,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	ImagePublicID     string   `json:"image_public_id,omitempty"`
}

// SeriesPage is one page of series.
type SeriesPage struct {
	Series     []Series   `json:"series"`
	Pagination Pagination `json:"pagination"`
}

// Blog is one post, published or draft.
type Blog struct {
	ID               string     `json:"id"`
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
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BlogRequest is the payload for creating or replacing a post.
type BlogRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug,omitempty"`
	ShortDescription string   `json:"short_description"`
	Content          string   `json:"content"`
	ThumbnailImage   ImageRef `json:"thumbnail_image"`
	BannerImage      ImageRef `json:"banner_image"`
	CategoryIDs      []string `json:"category_ids"`
	TagIDs           []string `json:"tag_ids,omitempty"`
	AuthorID         string   `json:"author_id"`
	Published        bool     `json:"published"`
	ReadTime         int      `json:"read_time,omitempty"`
	MetaTitle        string   `json:"meta_title,omitempty"`
	MetaDescription  string   `json:"meta_description,omitempty"`
	MetaKeywords     string   `json:"meta_keywords,omitempty"`
}

// BlogPage is one page of posts.
type BlogPage struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// Category groups blog posts.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryRequest is the payload for creating or replacing a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// Tag labels blog posts.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagRequest is the payload for creating or replacing a tag.
type TagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Author writes blog posts.
type Author struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Email       string      `json:"email"`
	Bio         string      `json:"bio,omitempty"`
	Avatar      ImageRef    `json:"avatar"`
	SocialLinks SocialLinks `json:"social_links"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AuthorRequest is the payload for creating or replacing an author.
type AuthorRequest struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug,omitempty"`
	Email       string      `json:"email"`
	Bio         string      `json:"bio,omitempty"`
	Avatar      ImageRef    `json:"avatar"`
	SocialLinks SocialLinks `json:"social_links"`
}

// Banner is one slide of the homepage carousel.
type Banner struct {
	ID            string    `json:"id"`
	Title         string    `json:"title,omitempty"`
	Subtitle      string    `json:"subtitle,omitempty"`
	Description   string    `json:"description,omitempty"`
	Platform      string    `json:"platform,omitempty"`
	ImageURL      string    `json:"image_url"`
	ImagePublicID string    `json:"image_public_id,omitempty"`
	WatchNowLink  string    `json:"watch_now_link,omitempty"`
	LearnMoreLink string    `json:"learn_more_link,omitempty"`
	IsActive      bool      `json:"is_active"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BannerRequest is the payload for creating or replacing a banner.
type BannerRequest struct {
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

// Upload is a stored image on the CDN.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BlurHash string `json:"blur_hash,omitempty"`
}

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type"`
	Message     string `json:"message"`
}

// SearchHit is one row of a search result.
type SearchHit struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Score      float64           `json:"score"`
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	Excerpt    string            `json:"excerpt,omitempty"`
	Director   string            `json:"director,omitempty"`
	Year       int               `json:"year,omitempty"`
	Genres     []string          `json:"genres,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// SearchResult is the answer to a federated search.
type SearchResult struct {
	Query  string      `json:"query"`
	Total  uint64      `json:"total"`
	TookMs int64       `json:"took_ms"`
	Hits   []SearchHit `json:"hits"`
}

// Health is the server's health check answer.
type Health struct {
	Status string `json:"status"`
	Films  int    `json:"films"`
}
