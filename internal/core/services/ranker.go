package services

import (
	"sort"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

type scoredTrack struct {
	index    int
	distance float64
}

// rankTracks orders the catalog by cosine distance between each standardized
// row and the standardized taste profile, then returns the first n surviving
// rows. Exclusion happens before truncation so an excluded near-duplicate
// never costs the caller a result slot.
//
// The sort is stable and the input order is the catalog load order, so ties
// resolve deterministically.
func rankTracks(
	profile domain.FeatureVector,
	tracks []domain.Track,
	scaler *domain.FeatureScaler,
	n int,
	excludedTitles map[string]struct{},
) []domain.RecommendedTrack {
	scaledProfile := scaler.Transform(profile)

	scored := make([]scoredTrack, 0, len(tracks))
	for i, t := range tracks {
		v := t.Features()
		if !v.Complete() {
			// A row with missing features has no defined distance.
			continue
		}
		scored = append(scored, scoredTrack{
			index:    i,
			distance: domain.CosineDistance(scaledProfile, scaler.Transform(v)),
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].distance < scored[b].distance
	})

	results := make([]domain.RecommendedTrack, 0, n)
	for _, s := range scored {
		t := tracks[s.index]
		if _, skip := excludedTitles[t.Title]; skip {
			continue
		}
		results = append(results, domain.RecommendedTrack{
			Title:      t.Title,
			Year:       t.Year,
			Popularity: int(t.Popularity),
			Artists:    t.Artists,
		})
		if len(results) == n {
			break
		}
	}
	return results
}
