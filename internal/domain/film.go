package domain

// Film is a feature film in the studio catalog.
// Slug is unique across all films and is the public URL key.
type Film struct {
	Timestamps
	Title             string   `json:"title"`
	Year              int      `json:"year"`
	Duration          string   `json:"duration"` // Display string, e.g. "1h30m"
	Genres            []string `json:"genres"`
	Description       string   `json:"description"`
	Starring          string   `json:"starring,omitempty"`
	Director          string   `json:"director,omitempty"`
	Producers         string   `json:"producers,omitempty"`
	ProductionCompany string   `json:"production_company,omitempty"`
	TrailerURL        string   `json:"trailer_url,omitempty"`
	StreamingURL      string   `json:"streaming_url,omitempty"`
	Slug              string   `json:"slug"`
	ImageURL          string   `json:"image_url,omitempty"`
	ImagePublicID     string   `json:"image_public_id,omitempty"`
}
