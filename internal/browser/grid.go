package browser

import (
	"strconv"

	"github.com/Anikethb04/Project-IMDB/internal/models"
)

// PlayNotice is shown instead of playback.
const PlayNotice = "Movie playback feature - Coming soon!"

// Filter narrows the home grid by kind.
type Filter int

const (
	FilterAll Filter = iota
	FilterMovies
	FilterSeries
)

func (f Filter) String() string {
	switch f {
	case FilterMovies:
		return "Movies"
	case FilterSeries:
		return "Series"
	default:
		return "All"
	}
}

// FilterKind returns the items matching f, in order.
func FilterKind(items []models.CatalogItem, f Filter) []models.CatalogItem {
	if f == FilterAll {
		return items
	}
	want := models.KindMovie
	if f == FilterSeries {
		want = models.KindSeries
	}
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		if it.Kind == want {
			out = append(out, it)
		}
	}
	return out
}

// DetailLink returns the id and media type used to open item's detail view.
// An absent media type falls back to "tv" in the series view, else "movie".
// Items without an id yield an empty id.
func DetailLink(item models.CatalogItem, f Filter) (id, mediaType string) {
	if item.ID != 0 {
		id = strconv.Itoa(item.ID)
	}
	mediaType = item.MediaType
	if mediaType == "" {
		mediaType = "movie"
		if f == FilterSeries {
			mediaType = "tv"
		}
	}
	return id, mediaType
}
