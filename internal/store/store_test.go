package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anikethb04/Project-IMDB/internal/database"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	db, err := database.NewSQLite(database.MemoryPath)
	require.NoError(t, err)

	mr := miniredis.RunT(t)

	stores := map[string]Store{
		"memory": NewMemory(),
		"sqlite": NewSQL(db, SQLite),
		"redis":  NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "browse:"),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))

			got, err := s.GetMany(ctx, "a", "b", "missing")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetMany(ctx, map[string]string{"a": "old"}))
			require.NoError(t, s.SetMany(ctx, map[string]string{"a": "new"}))

			got, err := s.GetMany(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "new", got["a"])
		})
	}
}

func TestStore_DeleteRemovesAllKeys(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "b": "2", "c": "3"}))
			require.NoError(t, s.Delete(ctx, "a", "b"))

			got, err := s.GetMany(ctx, "a", "b", "c")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"c": "3"}, got)
		})
	}
}

func TestStore_EmptyKeyLists(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.GetMany(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NoError(t, s.Delete(ctx))
		})
	}
}

func TestRedis_NamespacesKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "browse:")
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string]string{"tmdb_movies": "[]", "tmdb_cache_time": "1"}))
	assert.ElementsMatch(t, []string{"browse:tmdb_movies", "browse:tmdb_cache_time"}, mr.Keys())
	mr.CheckGet(t, "browse:tmdb_cache_time", "1")

	require.NoError(t, mr.Set("tmdb_movies", "unprefixed"))
	got, err := s.GetMany(ctx, "tmdb_movies")
	require.NoError(t, err)
	assert.Equal(t, "[]", got["tmdb_movies"])

	require.NoError(t, s.Delete(ctx, "tmdb_movies", "tmdb_cache_time"))
	assert.Equal(t, []string{"tmdb_movies"}, mr.Keys())
}

func TestRedis_ServerDownIsAnError(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	s := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), "browse:")
	defer s.Close()
	mr.Close()

	_, err = s.GetMany(context.Background(), "a")
	assert.Error(t, err)
	assert.Error(t, s.SetMany(context.Background(), map[string]string{"a": "1"}))
}

func TestDialectPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", (&SQL{dialect: SQLite}).placeholders(3))
	assert.Equal(t, "$1, $2, $3", (&SQL{dialect: Postgres}).placeholders(3))
}
