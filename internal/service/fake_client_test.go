package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Anikethb04/Project-IMDB/internal/tmdb"
)

var errUpstream = errors.New("upstream unavailable")

// fakeClient serves canned responses keyed by endpoint name and records calls.
type fakeClient struct {
	mu       sync.Mutex
	lists    map[string][]tmdb.Item
	failing  map[string]bool
	details  *tmdb.Details
	credits  *tmdb.Credits
	reviews  *tmdb.ReviewsResponse
	calls    []string
	searches []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		lists:   map[string][]tmdb.Item{},
		failing: map[string]bool{},
		details: &tmdb.Details{},
		credits: &tmdb.Credits{},
		reviews: &tmdb.ReviewsResponse{},
	}
}

func (f *fakeClient) list(name string) (*tmdb.PagedResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.failing[name] {
		return nil, fmt.Errorf("%s: %w", name, errUpstream)
	}
	return &tmdb.PagedResponse{Page: 1, Results: f.lists[name]}, nil
}

func (f *fakeClient) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.failing[name] {
		return fmt.Errorf("%s: %w", name, errUpstream)
	}
	return nil
}

func (f *fakeClient) Popular(context.Context) (*tmdb.PagedResponse, error) {
	return f.list("popular")
}

func (f *fakeClient) TopRated(context.Context) (*tmdb.PagedResponse, error) {
	return f.list("top_rated")
}

func (f *fakeClient) TrendingAll(context.Context) (*tmdb.PagedResponse, error) {
	return f.list("trending")
}

func (f *fakeClient) Discover(_ context.Context, p tmdb.DiscoverParams) (*tmdb.PagedResponse, error) {
	return f.list("discover_" + p.WatchRegion)
}

func (f *fakeClient) SearchMulti(_ context.Context, q string) (*tmdb.PagedResponse, error) {
	f.mu.Lock()
	f.searches = append(f.searches, q)
	f.mu.Unlock()
	return f.list("search")
}

func (f *fakeClient) Details(_ context.Context, mediaType, id string) (*tmdb.Details, error) {
	if err := f.record("details:" + mediaType + "/" + id); err != nil {
		return nil, err
	}
	return f.details, nil
}

func (f *fakeClient) Credits(_ context.Context, mediaType, id string) (*tmdb.Credits, error) {
	if err := f.record("credits:" + mediaType + "/" + id); err != nil {
		return nil, err
	}
	return f.credits, nil
}

func (f *fakeClient) Reviews(_ context.Context, mediaType, id string) (*tmdb.ReviewsResponse, error) {
	if err := f.record("reviews:" + mediaType + "/" + id); err != nil {
		return nil, err
	}
	return f.reviews, nil
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func items(prefix string, n int, mediaType string) []tmdb.Item {
	out := make([]tmdb.Item, n)
	for i := range out {
		out[i] = tmdb.Item{ID: i + 1, Title: fmt.Sprintf("%s-%d", prefix, i+1), MediaType: mediaType}
	}
	return out
}
