// Package browser holds the front end's state: the timestamp-gated catalog
// cache, the featured rotation and the search panel. None of it depends on a
// UI; the terminal front end renders projections of these types.
package browser

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Anikethb04/Project-IMDB/internal/models"
	"github.com/Anikethb04/Project-IMDB/internal/store"
)

// Policy describes one cache keyspace.
type Policy struct {
	Name       string
	PayloadKey string
	TimeKey    string
	TTL        time.Duration
	// ClearOnFailure drops the entry when a refresh fails or comes back empty.
	ClearOnFailure bool
}

var (
	// GeneralPolicy caches the mixed catalog.
	GeneralPolicy = Policy{
		Name:           "general",
		PayloadKey:     "tmdb_movies",
		TimeKey:        "tmdb_cache_time",
		TTL:            time.Hour,
		ClearOnFailure: true,
	}

	// RegionalPolicy caches regional trending. Stale entries survive failures.
	RegionalPolicy = Policy{
		Name:           "regional",
		PayloadKey:     "trending_regional",
		TimeKey:        "trending_cache_time",
		TTL:            10 * time.Minute,
		ClearOnFailure: false,
	}
)

// FetchFunc loads a fresh list on a cache miss.
type FetchFunc func(ctx context.Context) ([]models.CatalogItem, error)

// Keyspace is a read-through cache for one Policy over a Store.
type Keyspace struct {
	policy Policy
	store  store.Store
	clock  clock.Clock
	log    *slog.Logger
}

// NewKeyspace creates a Keyspace. A nil logger uses slog.Default.
func NewKeyspace(p Policy, s store.Store, c clock.Clock, log *slog.Logger) *Keyspace {
	if log == nil {
		log = slog.Default()
	}
	return &Keyspace{policy: p, store: s, clock: c, log: log.With("keyspace", p.Name)}
}

// Policy returns the keyspace's policy.
func (k *Keyspace) Policy() Policy {
	return k.policy
}

// Read returns the cached list if it is present, well formed, non-empty and
// younger than the TTL. Malformed payloads are invalidated.
func (k *Keyspace) Read(ctx context.Context) ([]models.CatalogItem, bool) {
	vals, err := k.store.GetMany(ctx, k.policy.PayloadKey, k.policy.TimeKey)
	if err != nil {
		k.log.Warn("cache read failed", "error", err)
		return nil, false
	}

	payload, ok := vals[k.policy.PayloadKey]
	if !ok {
		return nil, false
	}
	rawTime, ok := vals[k.policy.TimeKey]
	if !ok {
		return nil, false
	}

	var items []models.CatalogItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		k.log.Warn("cache payload corrupt, clearing", "error", err)
		k.Invalidate(ctx)
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}

	storedAt, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return nil, false
	}
	if k.clock.Now().UnixMilli()-storedAt >= k.policy.TTL.Milliseconds() {
		return nil, false
	}
	return items, true
}

// Write stores items with the given timestamp as one unit.
func (k *Keyspace) Write(ctx context.Context, items []models.CatalogItem, storedAt time.Time) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return k.store.SetMany(ctx, map[string]string{
		k.policy.PayloadKey: string(payload),
		k.policy.TimeKey:    strconv.FormatInt(storedAt.UnixMilli(), 10),
	})
}

// Invalidate removes the payload and its timestamp together.
func (k *Keyspace) Invalidate(ctx context.Context) {
	if err := k.store.Delete(ctx, k.policy.PayloadKey, k.policy.TimeKey); err != nil {
		k.log.Warn("cache invalidate failed", "error", err)
	}
}

// Load returns the cached list or fetches and stores a fresh one. Failures are
// logged and yield an empty list, never an error.
func (k *Keyspace) Load(ctx context.Context, fetch FetchFunc) []models.CatalogItem {
	if items, ok := k.Read(ctx); ok {
		k.log.Debug("cache hit", "items", len(items))
		return items
	}

	items, err := fetch(ctx)
	if err != nil || len(items) == 0 {
		if err != nil {
			k.log.Error("fetch failed", "error", err)
		} else {
			k.log.Warn("fetch returned no items")
		}
		if k.policy.ClearOnFailure {
			k.Invalidate(ctx)
		}
		return []models.CatalogItem{}
	}

	if err := k.Write(ctx, items, k.clock.Now()); err != nil {
		k.log.Warn("cache write failed", "error", err)
	}
	return items
}
