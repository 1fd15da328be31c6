package service

import (
	"strings"

	"github.com/Anikethb04/Project-IMDB/internal/models"
	"github.com/Anikethb04/Project-IMDB/internal/tmdb"
)

// Normalizer maps a TMDB list item onto a CatalogItem. Image sizes and
// fallbacks are fixed per endpoint, never per item.
type Normalizer struct {
	PosterSize          string
	BackdropSize        string
	PosterPlaceholder   string
	BackdropPlaceholder string
	YearFallback        string
	// DefaultMediaType replaces an absent discriminator. Empty echoes it as-is.
	DefaultMediaType string
}

var (
	// MixedNormalizer shapes /api/movies items.
	MixedNormalizer = Normalizer{
		PosterSize:          "w200",
		BackdropSize:        "w500",
		PosterPlaceholder:   models.PlaceholderPoster,
		BackdropPlaceholder: models.PlaceholderBackdrop,
		YearFallback:        "2024",
		DefaultMediaType:    "movie",
	}

	// RegionalNormalizer shapes /api/trending-regional items.
	RegionalNormalizer = Normalizer{
		PosterSize:          "w200",
		BackdropSize:        "original",
		PosterPlaceholder:   models.PlaceholderPoster,
		BackdropPlaceholder: models.PlaceholderBackdropLarge,
		YearFallback:        "2024",
		DefaultMediaType:    "movie",
	}

	// SearchNormalizer shapes /api/search items.
	SearchNormalizer = Normalizer{
		PosterSize:          "w200",
		BackdropSize:        "w500",
		PosterPlaceholder:   models.PlaceholderPoster,
		BackdropPlaceholder: models.PlaceholderBackdrop,
		YearFallback:        "N/A",
	}
)

// Normalize never fails; every missing field has a substitute.
func (n Normalizer) Normalize(item tmdb.Item) models.CatalogItem {
	kind, genre := Classify(item.MediaType)

	name := item.Title
	if name == "" {
		name = item.Name
	}

	overview := item.Overview
	if overview == "" {
		overview = models.DefaultOverview
	}

	mediaType := item.MediaType
	if mediaType == "" {
		mediaType = n.DefaultMediaType
	}

	return models.CatalogItem{
		ID:          item.ID,
		Name:        name,
		Rating:      item.VoteAverage,
		Year:        n.year(item),
		PosterSmall: imageURL(n.PosterSize, item.PosterPath, n.PosterPlaceholder),
		PosterLarge: imageURL(n.BackdropSize, item.BackdropPath, n.BackdropPlaceholder),
		GenreLabel:  genre,
		Kind:        kind,
		MediaType:   mediaType,
		Overview:    overview,
	}
}

// NormalizeAll maps items in order.
func (n Normalizer) NormalizeAll(items []tmdb.Item) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, n.Normalize(it))
	}
	return out
}

func (n Normalizer) year(item tmdb.Item) string {
	date := item.ReleaseDate
	if date == "" {
		date = item.FirstAirDate
	}
	if date == "" {
		return n.YearFallback
	}
	y, _, _ := strings.Cut(date, "-")
	return y
}

// Classify is binary: "tv" is a series, anything else (including "") a movie.
func Classify(mediaType string) (models.Kind, string) {
	if mediaType == "tv" {
		return models.KindSeries, models.GenreTVSeries
	}
	return models.KindMovie, models.GenreMovie
}

func imageURL(size, path, placeholder string) string {
	if path == "" {
		return placeholder
	}
	return models.TMDBImageBase + size + path
}

func optionalImageURL(size, path string) *string {
	if path == "" {
		return nil
	}
	u := models.TMDBImageBase + size + path
	return &u
}
