package trackcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleTrack() domain.Track {
	return domain.Track{
		Title: "Billie Jean", Year: 1982, Artists: "Michael Jackson",
		Valence: 0.89, Acousticness: 0.02, Danceability: 0.92, DurationMs: 293827,
		Energy: 0.65, Explicit: 0, Instrumentalness: 0.01, Key: 11,
		Liveness: 0.04, Loudness: -3.05, Mode: 0, Popularity: 85,
		Speechiness: 0.04, Tempo: 117.0,
	}
}

func TestGetMissOnEmptyStore(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get(context.Background(), "Billie Jean", 1982)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutThenGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	want := sampleTrack()

	require.NoError(t, store.Put(context.Background(), want))

	got, ok, err := store.Get(context.Background(), "Billie Jean", 1982)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, got.Features().Complete())
}

func TestGetKeyedByTitleAndYear(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Put(context.Background(), sampleTrack()))

	_, ok, err := store.Get(context.Background(), "Billie Jean", 1983)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(context.Background(), "Thriller", 1982)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutUpsertsExistingKey(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sampleTrack()))

	updated := sampleTrack()
	updated.Popularity = 90
	updated.Artists = "Michael Jackson, Quincy Jones"
	require.NoError(t, store.Put(ctx, updated))

	got, ok, err := store.Get(ctx, "Billie Jean", 1982)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 90.0, got.Popularity)
	assert.Equal(t, "Michael Jackson, Quincy Jones", got.Artists)
}
