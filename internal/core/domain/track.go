package domain

// Feature indexes into a FeatureVector. The order is fixed: the scaler, the
// ranker, and the catalog loader all depend on it, so it is checked at compile
// time rather than carried around as column-name strings.
const (
	FeatValence = iota
	FeatYear
	FeatAcousticness
	FeatDanceability
	FeatDurationMs
	FeatEnergy
	FeatExplicit
	FeatInstrumentalness
	FeatKey
	FeatLiveness
	FeatLoudness
	FeatMode
	FeatPopularity
	FeatSpeechiness
	FeatTempo

	FeatureCount
)

// FeatureNames maps feature indexes to their catalog column names.
var FeatureNames = [FeatureCount]string{
	FeatValence:          "valence",
	FeatYear:             "year",
	FeatAcousticness:     "acousticness",
	FeatDanceability:     "danceability",
	FeatDurationMs:       "duration_ms",
	FeatEnergy:           "energy",
	FeatExplicit:         "explicit",
	FeatInstrumentalness: "instrumentalness",
	FeatKey:              "key",
	FeatLiveness:         "liveness",
	FeatLoudness:         "loudness",
	FeatMode:             "mode",
	FeatPopularity:       "popularity",
	FeatSpeechiness:      "speechiness",
	FeatTempo:            "tempo",
}

// Track represents a musical track in the domain layer. The release year is
// both metadata and a model feature. Numeric fields use NaN to mark a value
// that was missing in the source data.
type Track struct {
	Title   string
	Year    int
	Artists string

	Valence          float64
	Acousticness     float64
	Danceability     float64
	DurationMs       float64
	Energy           float64
	Explicit         float64
	Instrumentalness float64
	Key              float64
	Liveness         float64
	Loudness         float64
	Mode             float64
	Popularity       float64
	Speechiness      float64
	Tempo            float64
}

// Features returns the track's audio profile as an ordered vector.
func (t Track) Features() FeatureVector {
	return FeatureVector{
		FeatValence:          t.Valence,
		FeatYear:             float64(t.Year),
		FeatAcousticness:     t.Acousticness,
		FeatDanceability:     t.Danceability,
		FeatDurationMs:       t.DurationMs,
		FeatEnergy:           t.Energy,
		FeatExplicit:         t.Explicit,
		FeatInstrumentalness: t.Instrumentalness,
		FeatKey:              t.Key,
		FeatLiveness:         t.Liveness,
		FeatLoudness:         t.Loudness,
		FeatMode:             t.Mode,
		FeatPopularity:       t.Popularity,
		FeatSpeechiness:      t.Speechiness,
		FeatTempo:            t.Tempo,
	}
}

// SeedSong is a user-supplied taste anchor.
type SeedSong struct {
	Title string
	Year  int
}
