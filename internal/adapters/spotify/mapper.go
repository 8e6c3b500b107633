package spotify

import (
	"strconv"
	"strings"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

// mapTrackToDomain flattens a search hit plus its feature vector into a
// domain track. requestedYear covers release dates the API reports in a
// shape we cannot parse.
func mapTrackToDomain(hit trackResult, features audioFeatures, requestedYear int) domain.Track {
	names := make([]string, 0, len(hit.Artists))
	for _, a := range hit.Artists {
		names = append(names, a.Name)
	}

	year, ok := releaseYear(hit.Album.ReleaseDate)
	if !ok {
		year = requestedYear
	}

	explicit := 0.0
	if hit.Explicit {
		explicit = 1.0
	}

	return domain.Track{
		Title:   hit.Name,
		Year:    year,
		Artists: strings.Join(names, ", "),

		Valence:          features.Valence,
		Acousticness:     features.Acousticness,
		Danceability:     features.Danceability,
		DurationMs:       float64(hit.DurationMs),
		Energy:           features.Energy,
		Explicit:         explicit,
		Instrumentalness: features.Instrumentalness,
		Key:              features.Key,
		Liveness:         features.Liveness,
		Loudness:         features.Loudness,
		Mode:             features.Mode,
		Popularity:       float64(hit.Popularity),
		Speechiness:      features.Speechiness,
		Tempo:            features.Tempo,
	}
}

// releaseYear extracts the year from a release date, which the API reports
// with day, month, or year precision ("1982-11-30", "1982-11", "1982").
func releaseYear(releaseDate string) (int, bool) {
	head, _, _ := strings.Cut(releaseDate, "-")
	year, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || year == 0 {
		return 0, false
	}
	return year, true
}
