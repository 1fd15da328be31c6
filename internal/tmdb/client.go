package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"
)

// Client is the TMDB API client.
type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	attempts uint
}

// Options configures a Client. Zero values mean: no HTTP timeout,
// a single attempt, and no client-side rate limit.
type Options struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
	RatePerSecond float64
	HTTPClient    *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	attempts := opts.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), int(opts.RatePerSecond)+1)
	}
	return &Client{
		apiKey:   opts.APIKey,
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     hc,
		limiter:  limiter,
		attempts: attempts,
	}
}

// StatusError is returned when TMDB answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API returned status %d for %s: %s", e.StatusCode, e.Path, e.Body)
}

// ---- TMDB Response Types ----

// PagedResponse is the envelope shared by list, discover and search endpoints.
type PagedResponse struct {
	Page         int    `json:"page"`
	Results      []Item `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Item is a movie, show or person from a TMDB result list.
// Movies carry Title/ReleaseDate, shows carry Name/FirstAirDate.
type Item struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	MediaType    string  `json:"media_type"`
}

// Details is the movie or TV detail payload.
type Details struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	ReleaseDate    string  `json:"release_date"`
	FirstAirDate   string  `json:"first_air_date"`
	Runtime        int     `json:"runtime"`
	EpisodeRunTime []int   `json:"episode_run_time"`
	Genres         []Genre `json:"genres"`
	PosterPath     string  `json:"poster_path"`
	BackdropPath   string  `json:"backdrop_path"`
	Tagline        string  `json:"tagline"`
	Status         string  `json:"status"`
	Budget         int64   `json:"budget"`
	Revenue        int64   `json:"revenue"`
}

// Genre is a genre from TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits wraps cast and crew.
type Credits struct {
	ID   int    `json:"id"`
	Cast []Cast `json:"cast"`
	Crew []Crew `json:"crew"`
}

// Cast is a cast member.
type Cast struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// Crew is a crew member.
type Crew struct {
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// ReviewsResponse is the reviews page for a title.
type ReviewsResponse struct {
	Page    int      `json:"page"`
	Results []Review `json:"results"`
}

// Review is a single user review.
type Review struct {
	Author        string        `json:"author"`
	Content       string        `json:"content"`
	CreatedAt     string        `json:"created_at"`
	AuthorDetails AuthorDetails `json:"author_details"`
}

// AuthorDetails carries the optional reviewer rating.
type AuthorDetails struct {
	Rating *float64 `json:"rating"`
}

// DiscoverParams selects a regional discover feed.
type DiscoverParams struct {
	WatchRegion       string
	OriginalLanguages string
}

// ---- Client Methods ----

// Popular fetches page 1 of /movie/popular.
func (c *Client) Popular(ctx context.Context) (*PagedResponse, error) {
	var result PagedResponse
	q := url.Values{"language": {"en-US"}, "page": {"1"}}
	if err := c.get(ctx, "/movie/popular", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TopRated fetches page 1 of /movie/top_rated.
func (c *Client) TopRated(ctx context.Context) (*PagedResponse, error) {
	var result PagedResponse
	q := url.Values{"language": {"en-US"}, "page": {"1"}}
	if err := c.get(ctx, "/movie/top_rated", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TrendingAll fetches the weekly trending list across movies and TV.
func (c *Client) TrendingAll(ctx context.Context) (*PagedResponse, error) {
	var result PagedResponse
	if err := c.get(ctx, "/trending/all/week", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Discover fetches movies for a watch region sorted by popularity.
func (c *Client) Discover(ctx context.Context, p DiscoverParams) (*PagedResponse, error) {
	var result PagedResponse
	q := url.Values{
		"language":               {"en-US"},
		"sort_by":                {"popularity.desc"},
		"watch_region":           {p.WatchRegion},
		"with_original_language": {p.OriginalLanguages},
	}
	if err := c.get(ctx, "/discover/movie", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchMulti searches movies, shows and people in one call.
func (c *Client) SearchMulti(ctx context.Context, query string) (*PagedResponse, error) {
	var result PagedResponse
	q := url.Values{"language": {"en-US"}, "query": {query}, "page": {"1"}}
	if err := c.get(ctx, "/search/multi", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Details fetches the detail payload for a movie or tv id.
func (c *Client) Details(ctx context.Context, mediaType, id string) (*Details, error) {
	var result Details
	q := url.Values{"language": {"en-US"}}
	if err := c.get(ctx, titlePath(mediaType, id, ""), q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Credits fetches cast and crew for a movie or tv id.
func (c *Client) Credits(ctx context.Context, mediaType, id string) (*Credits, error) {
	var result Credits
	if err := c.get(ctx, titlePath(mediaType, id, "/credits"), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Reviews fetches the first page of reviews for a movie or tv id.
func (c *Client) Reviews(ctx context.Context, mediaType, id string) (*ReviewsResponse, error) {
	var result ReviewsResponse
	q := url.Values{"language": {"en-US"}, "page": {"1"}}
	if err := c.get(ctx, titlePath(mediaType, id, "/reviews"), q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func titlePath(mediaType, id, suffix string) string {
	return "/" + url.PathEscape(mediaType) + "/" + url.PathEscape(id) + suffix
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	target := c.baseURL + path + "?" + query.Encode()

	return retry.Do(
		func() error {
			if c.limiter != nil {
				if err := c.limiter.Wait(ctx); err != nil {
					return retry.Unrecoverable(err)
				}
			}
			slog.Debug("fetching TMDB", "path", path)
			return c.doGet(ctx, target, path, dest)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)
}

func (c *Client) doGet(ctx context.Context, target, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Path: path, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to decode %s response: %w", path, err))
	}
	return nil
}

func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	return true
}
