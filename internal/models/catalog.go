package models

// Kind is the normalized media classification.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

const (
	GenreMovie    = "Movie"
	GenreTVSeries = "TV Series"
)

// CatalogItem is the normalized record returned by every list endpoint.
// JSON names match the payload the front end caches.
type CatalogItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"imdb"`
	Year        string  `json:"date"`
	PosterSmall string  `json:"sposter"`
	PosterLarge string  `json:"bposter"`
	GenreLabel  string  `json:"genre"`
	Kind        Kind    `json:"type"`
	MediaType   string  `json:"media_type"`
	Overview    string  `json:"overview"`
}

// Genre is a named genre on a detail record.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one billed cast entry.
type CastMember struct {
	Name      string  `json:"name"`
	Character string  `json:"character"`
	Profile   *string `json:"profile"`
}

// CrewMember is one key crew entry.
type CrewMember struct {
	Name    string  `json:"name"`
	Job     string  `json:"job"`
	Profile *string `json:"profile"`
}

// Review is one user review.
type Review struct {
	Author    string   `json:"author"`
	Content   string   `json:"content"`
	Rating    *float64 `json:"rating"`
	CreatedAt string   `json:"created_at"`
}

// DetailRecord is the response shape for /api/movie/:id.
type DetailRecord struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Overview    string       `json:"overview"`
	Rating      float64      `json:"rating"`
	VoteCount   int          `json:"vote_count"`
	ReleaseDate string       `json:"release_date"`
	Runtime     int          `json:"runtime"`
	Genres      []Genre      `json:"genres"`
	Poster      *string      `json:"poster"`
	Backdrop    *string      `json:"backdrop"`
	Tagline     string       `json:"tagline"`
	Status      string       `json:"status"`
	Budget      int64        `json:"budget"`
	Revenue     int64        `json:"revenue"`
	Cast        []CastMember `json:"cast"`
	Crew        []CrewMember `json:"crew"`
	Reviews     []Review     `json:"reviews"`
}

const (
	TMDBImageBase = "https://image.tmdb.org/t/p/"

	PlaceholderPoster        = "https://via.placeholder.com/200x300/1a1a1a/ffffff?text=No+Poster"
	PlaceholderBackdrop      = "https://via.placeholder.com/500x281/1a1a1a/ffffff?text=No+Image"
	PlaceholderBackdropLarge = "https://via.placeholder.com/1920x1080/1a1a1a/ffffff?text=No+Image"
	PlaceholderDetailPoster  = "https://via.placeholder.com/300x450/1a1a1a/ffffff?text=No+Poster"

	DefaultOverview = "No description available"
)
