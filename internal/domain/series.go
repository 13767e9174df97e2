package domain

// SeriesStatus describes where a series is in its broadcast life.
type SeriesStatus string

// Valid series statuses.
const (
	SeriesOngoing   SeriesStatus = "ongoing"
	SeriesCompleted SeriesStatus = "completed"
	SeriesUpcoming  SeriesStatus = "upcoming"
)

// IsValid reports whether s is one of the known statuses.
func (s SeriesStatus) IsValid() bool {
	switch s {
	case SeriesOngoing, SeriesCompleted, SeriesUpcoming:
		return true
	}
	return false
}

// Series is an episodic production in the studio catalog.
// Slug is unique across all series.
type Series struct {
	Timestamps
	Title             string       `json:"title"`
	Year              int          `json:"year"`
	Seasons           int          `json:"seasons"`
	Episodes          int          `json:"episodes"`
	Genres            []string     `json:"genres"`
	Description       string       `json:"description"`
	Starring          string       `json:"starring,omitempty"`
	Director          string       `json:"director,omitempty"`
	Producers         string       `json:"producers,omitempty"`
	ProductionCompany string       `json:"production_company,omitempty"`
	TrailerURL        string       `json:"trailer_url,omitempty"`
	StreamingURL      string       `json:"streaming_url,omitempty"`
	Slug              string       `json:"slug"`
	ImageURL          string       `json:"image_url,omitempty"`
	ImagePublicID     string       `json:"image_public_id,omitempty"`
	Status            SeriesStatus `json:"status"`
}
