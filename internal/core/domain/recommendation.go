package domain

// RecommendationStatus distinguishes the three caller-visible outcomes of a
// recommendation call. Zero results is a status, never an error.
type RecommendationStatus string

const (
	// StatusOK means at least one track was recommended.
	StatusOK RecommendationStatus = "ok"
	// StatusNoInput means the seed list was empty.
	StatusNoInput RecommendationStatus = "no-input"
	// StatusNoMatches means no seed resolved, or every candidate was excluded.
	StatusNoMatches RecommendationStatus = "no-matches"
)

// RecommendedTrack is the caller-facing subset of catalog fields.
type RecommendedTrack struct {
	Title      string
	Year       int
	Popularity int
	Artists    string
}

// RecommendationResult is an ordered recommendation list, most similar first.
type RecommendationResult struct {
	Status RecommendationStatus
	Tracks []RecommendedTrack
}
