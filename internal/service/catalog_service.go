package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/Anikethb04/Project-IMDB/internal/models"
	"github.com/Anikethb04/Project-IMDB/internal/tmdb"
)

const (
	mixedSliceSize    = 5
	regionalSliceSize = 10
	searchLimit       = 10
	castLimit         = 10
	crewLimit         = 5
	reviewLimit       = 5

	profileSize        = "w185"
	detailPosterSize   = "w500"
	detailBackdropSize = "original"
)

var (
	indiaDiscover = tmdb.DiscoverParams{WatchRegion: "IN", OriginalLanguages: "hi|ta|te"}
	usDiscover    = tmdb.DiscoverParams{WatchRegion: "US", OriginalLanguages: "en"}

	keyCrewJobs = map[string]bool{"Director": true, "Producer": true, "Writer": true}
)

// CatalogClient is the subset of the TMDB client the service depends on.
type CatalogClient interface {
	Popular(ctx context.Context) (*tmdb.PagedResponse, error)
	TopRated(ctx context.Context) (*tmdb.PagedResponse, error)
	TrendingAll(ctx context.Context) (*tmdb.PagedResponse, error)
	Discover(ctx context.Context, p tmdb.DiscoverParams) (*tmdb.PagedResponse, error)
	SearchMulti(ctx context.Context, query string) (*tmdb.PagedResponse, error)
	Details(ctx context.Context, mediaType, id string) (*tmdb.Details, error)
	Credits(ctx context.Context, mediaType, id string) (*tmdb.Credits, error)
	Reviews(ctx context.Context, mediaType, id string) (*tmdb.ReviewsResponse, error)
}

// CatalogService combines TMDB calls into the shapes served by the API.
type CatalogService struct {
	client CatalogClient
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client CatalogClient) *CatalogService {
	return &CatalogService{client: client}
}

type listFetch func(ctx context.Context) (*tmdb.PagedResponse, error)

// fanOut runs every fetch concurrently and waits for all of them. Any
// failure fails the whole call; results keep the order of fetches.
func fanOut(ctx context.Context, fetches ...listFetch) ([][]tmdb.Item, error) {
	results := make([][]tmdb.Item, len(fetches))
	p := pool.New().WithErrors().WithContext(ctx)
	for i, fetch := range fetches {
		p.Go(func(ctx context.Context) error {
			resp, err := fetch(ctx)
			if err != nil {
				return err
			}
			results[i] = resp.Results
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// MixedCatalog returns the first 5 popular, top-rated and trending items,
// in that order. Titles present in several lists are kept.
func (s *CatalogService) MixedCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	lists, err := fanOut(ctx, s.client.Popular, s.client.TopRated, s.client.TrendingAll)
	if err != nil {
		return nil, fmt.Errorf("fetch mixed catalog: %w", err)
	}

	combined := make([]tmdb.Item, 0, 3*mixedSliceSize)
	for _, l := range lists {
		combined = append(combined, firstN(l, mixedSliceSize)...)
	}
	return MixedNormalizer.NormalizeAll(combined), nil
}

// RegionalTrending returns the first 10 India discover results followed by
// the first 10 US discover results.
func (s *CatalogService) RegionalTrending(ctx context.Context) ([]models.CatalogItem, error) {
	lists, err := fanOut(ctx,
		func(ctx context.Context) (*tmdb.PagedResponse, error) { return s.client.Discover(ctx, indiaDiscover) },
		func(ctx context.Context) (*tmdb.PagedResponse, error) { return s.client.Discover(ctx, usDiscover) },
	)
	if err != nil {
		return nil, fmt.Errorf("fetch regional trending: %w", err)
	}

	combined := make([]tmdb.Item, 0, 2*regionalSliceSize)
	for _, l := range lists {
		combined = append(combined, firstN(l, regionalSliceSize)...)
	}
	return RegionalNormalizer.NormalizeAll(combined), nil
}

// Search runs a multi search. People are dropped before the result cap.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.CatalogItem, error) {
	if query == "" {
		return []models.CatalogItem{}, nil
	}

	resp, err := s.client.SearchMulti(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	filtered := make([]tmdb.Item, 0, searchLimit)
	for _, it := range resp.Results {
		if it.MediaType == "movie" || it.MediaType == "tv" {
			filtered = append(filtered, it)
		}
	}
	return SearchNormalizer.NormalizeAll(firstN(filtered, searchLimit)), nil
}

// Detail joins details, credits and reviews for one title. An empty
// mediaType means "movie". The id is passed through unvalidated.
func (s *CatalogService) Detail(ctx context.Context, id, mediaType string) (*models.DetailRecord, error) {
	if mediaType == "" {
		mediaType = "movie"
	}

	var (
		details *tmdb.Details
		credits *tmdb.Credits
		reviews *tmdb.ReviewsResponse
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		details, err = s.client.Details(ctx, mediaType, id)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		credits, err = s.client.Credits(ctx, mediaType, id)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		reviews, err = s.client.Reviews(ctx, mediaType, id)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("fetch %s/%s detail: %w", mediaType, id, err)
	}

	slog.Debug("assembled detail", "id", id, "media_type", mediaType,
		"cast", len(credits.Cast), "crew", len(credits.Crew), "reviews", len(reviews.Results))
	return buildDetail(details, credits, reviews), nil
}

func buildDetail(d *tmdb.Details, c *tmdb.Credits, r *tmdb.ReviewsResponse) *models.DetailRecord {
	rec := &models.DetailRecord{
		ID:          d.ID,
		Title:       d.Title,
		Overview:    d.Overview,
		Rating:      d.VoteAverage,
		VoteCount:   d.VoteCount,
		ReleaseDate: d.ReleaseDate,
		Runtime:     d.Runtime,
		Genres:      make([]models.Genre, 0, len(d.Genres)),
		Poster:      optionalImageURL(detailPosterSize, d.PosterPath),
		Backdrop:    optionalImageURL(detailBackdropSize, d.BackdropPath),
		Tagline:     d.Tagline,
		Status:      d.Status,
		Budget:      d.Budget,
		Revenue:     d.Revenue,
		Cast:        make([]models.CastMember, 0, castLimit),
		Crew:        make([]models.CrewMember, 0, crewLimit),
		Reviews:     make([]models.Review, 0, reviewLimit),
	}
	if rec.Title == "" {
		rec.Title = d.Name
	}
	if rec.ReleaseDate == "" {
		rec.ReleaseDate = d.FirstAirDate
	}
	if rec.Runtime == 0 && len(d.EpisodeRunTime) > 0 {
		rec.Runtime = d.EpisodeRunTime[0]
	}

	for _, g := range d.Genres {
		rec.Genres = append(rec.Genres, models.Genre{ID: g.ID, Name: g.Name})
	}
	for _, p := range firstN(c.Cast, castLimit) {
		rec.Cast = append(rec.Cast, models.CastMember{
			Name:      p.Name,
			Character: p.Character,
			Profile:   optionalImageURL(profileSize, p.ProfilePath),
		})
	}
	for _, p := range c.Crew {
		if len(rec.Crew) == crewLimit {
			break
		}
		if !keyCrewJobs[p.Job] {
			continue
		}
		rec.Crew = append(rec.Crew, models.CrewMember{
			Name:    p.Name,
			Job:     p.Job,
			Profile: optionalImageURL(profileSize, p.ProfilePath),
		})
	}
	for _, rv := range firstN(r.Results, reviewLimit) {
		rec.Reviews = append(rec.Reviews, models.Review{
			Author:    rv.Author,
			Content:   rv.Content,
			Rating:    rv.AuthorDetails.Rating,
			CreatedAt: rv.CreatedAt,
		})
	}
	return rec
}
