package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

// nullableFloat decodes to NaN on an empty cell so a missing value is never
// confused with a literal zero. The scaler drops NaN rows instead of imputing.
type nullableFloat float64

func (f *nullableFloat) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*f = nullableFloat(math.NaN())
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*f = nullableFloat(math.NaN())
		return nil
	}
	*f = nullableFloat(parsed)
	return nil
}

// csvTrack mirrors one row of the catalog file.
type csvTrack struct {
	Name    string        `csv:"name"`
	Year    nullableFloat `csv:"year"`
	Artists string        `csv:"artists"`

	Valence          nullableFloat `csv:"valence"`
	Acousticness     nullableFloat `csv:"acousticness"`
	Danceability     nullableFloat `csv:"danceability"`
	DurationMs       nullableFloat `csv:"duration_ms"`
	Energy           nullableFloat `csv:"energy"`
	Explicit         nullableFloat `csv:"explicit"`
	Instrumentalness nullableFloat `csv:"instrumentalness"`
	Key              nullableFloat `csv:"key"`
	Liveness         nullableFloat `csv:"liveness"`
	Loudness         nullableFloat `csv:"loudness"`
	Mode             nullableFloat `csv:"mode"`
	Popularity       nullableFloat `csv:"popularity"`
	Speechiness      nullableFloat `csv:"speechiness"`
	Tempo            nullableFloat `csv:"tempo"`
}

// toDomain converts a CSV row. Rows without a title or year cannot be looked
// up and are dropped by the loader.
func (r csvTrack) toDomain() (domain.Track, bool) {
	if strings.TrimSpace(r.Name) == "" || math.IsNaN(float64(r.Year)) {
		return domain.Track{}, false
	}
	return domain.Track{
		Title:   r.Name,
		Year:    int(r.Year),
		Artists: normalizeArtists(r.Artists),

		Valence:          float64(r.Valence),
		Acousticness:     float64(r.Acousticness),
		Danceability:     float64(r.Danceability),
		DurationMs:       float64(r.DurationMs),
		Energy:           float64(r.Energy),
		Explicit:         float64(r.Explicit),
		Instrumentalness: float64(r.Instrumentalness),
		Key:              float64(r.Key),
		Liveness:         float64(r.Liveness),
		Loudness:         float64(r.Loudness),
		Mode:             float64(r.Mode),
		Popularity:       float64(r.Popularity),
		Speechiness:      float64(r.Speechiness),
		Tempo:            float64(r.Tempo),
	}, true
}

// normalizeArtists flattens the artist-list column to a comma-joined string.
// Catalog exports commonly serialize the column as a Python-style list, e.g.
// ['Michael Jackson'] or ["Queen", "David Bowie"].
func normalizeArtists(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return trimmed
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
	parts := strings.Split(inner, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.Trim(strings.TrimSpace(p), `'"`)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return trimmed
	}
	return strings.Join(names, ", ")
}
