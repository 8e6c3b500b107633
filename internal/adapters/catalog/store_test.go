package catalog

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "name,year,artists,valence,acousticness,danceability,duration_ms,energy,explicit,instrumentalness,key,liveness,loudness,mode,popularity,speechiness,tempo\n"

func writeCatalog(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+rows), 0o644))
	return path
}

func TestLoadAndLookup(t *testing.T) {
	path := writeCatalog(t,
		"Billie Jean,1982,\"['Michael Jackson']\",0.89,0.02,0.92,293827,0.65,0,0.01,11,0.04,-3.05,0,85,0.04,117.0\n"+
			"Heroes,1977,\"['David Bowie']\",0.41,0.12,0.50,371173,0.77,0,0.15,2,0.09,-8.7,1,72,0.03,112.4\n")

	store, err := Load(path, zerolog.Nop())
	require.NoError(t, err)

	tracks := store.Tracks()
	require.Len(t, tracks, 2)
	assert.Equal(t, "Billie Jean", tracks[0].Title)
	assert.Equal(t, "Michael Jackson", tracks[0].Artists)

	got, ok := store.Lookup("Heroes", 1977)
	require.True(t, ok)
	assert.Equal(t, 0.41, got.Valence)
	assert.Equal(t, "David Bowie", got.Artists)

	_, ok = store.Lookup("Heroes", 1978)
	assert.False(t, ok, "year is part of the key")
	_, ok = store.Lookup("heroes", 1977)
	assert.False(t, ok, "title match is exact")
}

func TestLoadDuplicateKeyKeepsFirstRow(t *testing.T) {
	path := writeCatalog(t,
		"One,2001,A,0.10,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n"+
			"One,2001,B,0.90,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n")

	store, err := Load(path, zerolog.Nop())
	require.NoError(t, err)

	got, ok := store.Lookup("One", 2001)
	require.True(t, ok)
	assert.Equal(t, 0.10, got.Valence)
	assert.Len(t, store.Tracks(), 2, "both rows remain candidates for ranking")
}

func TestLoadMissingFeatureBecomesNaN(t *testing.T) {
	path := writeCatalog(t,
		"Gap,1999,A,,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n")

	store, err := Load(path, zerolog.Nop())
	require.NoError(t, err)

	got, ok := store.Lookup("Gap", 1999)
	require.True(t, ok)
	assert.True(t, math.IsNaN(got.Valence), "empty cell must not read as zero")
	assert.False(t, got.Features().Complete())
}

func TestLoadSkipsRowsWithoutTitleOrYear(t *testing.T) {
	path := writeCatalog(t,
		",1999,A,0.1,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n"+
			"No Year,,A,0.1,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n"+
			"Kept,2005,A,0.1,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n")

	store, err := Load(path, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, store.Tracks(), 1)
	assert.Equal(t, "Kept", store.Tracks()[0].Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadNoUsableRows(t *testing.T) {
	path := writeCatalog(t, ",1999,A,0.1,0.1,0.1,100,0.1,0,0.1,1,0.1,-5,1,10,0.1,100\n")
	_, err := Load(path, zerolog.Nop())
	assert.ErrorContains(t, err, "no usable rows")
}

func TestNormalizeArtists(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"['Michael Jackson']", "Michael Jackson"},
		{`["Queen", "David Bowie"]`, "Queen, David Bowie"},
		{"Plain Name", "Plain Name"},
		{"  spaced  ", "spaced"},
		{"[]", "[]"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeArtists(tc.in), tc.in)
	}
}
