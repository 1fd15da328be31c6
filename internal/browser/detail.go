package browser

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/Anikethb04/Project-IMDB/internal/models"
)

const (
	reviewPreviewLimit = 500

	NoCastText     = "No cast information available"
	NoCrewText     = "No crew information available"
	NoReviewsText  = "No reviews available"
	NoOverviewText = "No overview available."
	DetailErrText  = "Error loading movie details"
	UnknownRole    = "Unknown"
)

// ErrNoTitleID means the detail view was opened without an id; callers
// return to the home view instead of issuing a request.
var ErrNoTitleID = errors.New("no title id")

// DetailFetcher loads one detail record.
type DetailFetcher interface {
	Detail(ctx context.Context, id, mediaType string) (*models.DetailRecord, error)
}

// PersonCard is one cast or crew entry as displayed.
type PersonCard struct {
	Name  string
	Role  string
	Image string
}

// ReviewCard is one review as displayed.
type ReviewCard struct {
	Author  string
	Date    string
	Rating  string
	Content string
}

// DetailPage is the display projection of a DetailRecord.
type DetailPage struct {
	Title    string
	Tagline  string
	Year     string
	Runtime  string
	Rating   string
	Genres   []string
	Overview string
	Poster   string
	Backdrop string

	Cast        []PersonCard
	Crew        []PersonCard
	Reviews     []ReviewCard
	CastNote    string
	CrewNote    string
	ReviewsNote string
}

// LoadDetail fetches and projects a title. An empty id returns ErrNoTitleID
// without a request; a failed fetch returns a page titled DetailErrText
// along with the error.
func LoadDetail(ctx context.Context, f DetailFetcher, id, mediaType string) (DetailPage, error) {
	if id == "" {
		return DetailPage{}, ErrNoTitleID
	}
	if mediaType == "" {
		mediaType = string(models.KindMovie)
	}
	rec, err := f.Detail(ctx, id, mediaType)
	if err != nil {
		return DetailPage{Title: DetailErrText}, fmt.Errorf("load detail %s: %w", id, err)
	}
	return BuildDetailPage(rec), nil
}

// BuildDetailPage projects rec for display.
func BuildDetailPage(rec *models.DetailRecord) DetailPage {
	p := DetailPage{
		Title:    rec.Title,
		Year:     ReleaseYear(rec.ReleaseDate),
		Runtime:  FormatRuntime(rec.Runtime),
		Rating:   FormatRating(rec.Rating, rec.VoteCount),
		Overview: rec.Overview,
		Poster:   models.PlaceholderDetailPoster,
	}
	if rec.Tagline != "" {
		p.Tagline = `"` + rec.Tagline + `"`
	}
	if p.Overview == "" {
		p.Overview = NoOverviewText
	}
	if rec.Poster != nil {
		p.Poster = *rec.Poster
	}
	if rec.Backdrop != nil {
		p.Backdrop = *rec.Backdrop
	}
	for _, g := range rec.Genres {
		p.Genres = append(p.Genres, g.Name)
	}

	for _, c := range rec.Cast {
		role := c.Character
		if role == "" {
			role = UnknownRole
		}
		p.Cast = append(p.Cast, PersonCard{Name: c.Name, Role: role, Image: deref(c.Profile)})
	}
	if len(p.Cast) == 0 {
		p.CastNote = NoCastText
	}

	for _, c := range rec.Crew {
		p.Crew = append(p.Crew, PersonCard{Name: c.Name, Role: c.Job, Image: deref(c.Profile)})
	}
	if len(p.Crew) == 0 {
		p.CrewNote = NoCrewText
	}

	for _, r := range rec.Reviews {
		card := ReviewCard{
			Author:  r.Author,
			Date:    FormatReviewDate(r.CreatedAt),
			Content: TruncateReview(r.Content),
		}
		if r.Rating != nil && *r.Rating != 0 {
			card.Rating = fmt.Sprintf("%g/10", *r.Rating)
		}
		p.Reviews = append(p.Reviews, card)
	}
	if len(p.Reviews) == 0 {
		p.ReviewsNote = NoReviewsText
	}
	return p
}

// FormatRuntime renders minutes as "2h 19m". Zero renders as "".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ReleaseYear returns the year of a YYYY-MM-DD date, or "N/A".
func ReleaseYear(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprint(t.Year())
}

// FormatRating renders "7.5 (1,234 votes)".
func FormatRating(rating float64, votes int) string {
	return fmt.Sprintf("%.1f (%s votes)", rating, humanize.Comma(int64(votes)))
}

// FormatReviewDate renders an RFC 3339 timestamp as "January 2, 2006".
func FormatReviewDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("January 2, 2006")
}

// TruncateReview cuts content to 500 characters and appends "...".
func TruncateReview(content string) string {
	if utf8.RuneCountInString(content) <= reviewPreviewLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:reviewPreviewLimit]) + "..."
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
