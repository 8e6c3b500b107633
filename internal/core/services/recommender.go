package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
	"github.com/wavelength-labs/tastemaker/internal/core/ports"
)

// ErrInvalidLimit is returned when a caller asks for fewer than one result.
var ErrInvalidLimit = errors.New("service: result limit must be positive")

// seedSource records which tier of the resolver chain produced a track.
type seedSource string

const (
	sourceCatalog  seedSource = "catalog"
	sourceCache    seedSource = "cache"
	sourceExternal seedSource = "external"
)

// Recommender is the recommendation engine. It is stateless per call except
// for the injected catalog and the scaler fitted from it at startup, both of
// which are read-only, so concurrent calls are safe.
type Recommender struct {
	catalog  ports.CatalogStore
	provider ports.TrackProvider
	cache    ports.TrackCache
	scaler   *domain.FeatureScaler
	logger   zerolog.Logger
}

// NewRecommender constructs a Recommender. A nil cache disables caching.
func NewRecommender(
	catalog ports.CatalogStore,
	provider ports.TrackProvider,
	cache ports.TrackCache,
	scaler *domain.FeatureScaler,
	logger zerolog.Logger,
) *Recommender {
	if cache == nil {
		cache = ports.NopTrackCache{}
	}
	return &Recommender{
		catalog:  catalog,
		provider: provider,
		cache:    cache,
		scaler:   scaler,
		logger:   logger,
	}
}

// Recommend resolves every seed, averages the resolved feature vectors into a
// taste profile, and returns the n catalog tracks nearest to it by cosine
// distance on standardized features. Seed titles never appear in the result.
//
// An unresolvable seed is dropped, not fatal; the error return is reserved
// for engine misuse and internal failures.
func (r *Recommender) Recommend(ctx context.Context, seeds []domain.SeedSong, n int) (domain.RecommendationResult, error) {
	if n < 1 {
		return domain.RecommendationResult{}, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	if len(seeds) == 0 {
		return domain.RecommendationResult{Status: domain.StatusNoInput}, nil
	}

	excluded := make(map[string]struct{}, len(seeds))
	vectors := make([]domain.FeatureVector, 0, len(seeds))
	for _, seed := range seeds {
		excluded[seed.Title] = struct{}{}

		track, src, ok := r.resolveSeed(ctx, seed)
		if !ok {
			continue
		}
		v := track.Features()
		if !v.Complete() {
			r.logger.Warn().Str("title", seed.Title).Int("year", seed.Year).
				Msg("seed resolved with incomplete features, skipping")
			continue
		}
		r.logger.Debug().Str("title", seed.Title).Int("year", seed.Year).
			Str("source", string(src)).Msg("seed resolved")
		vectors = append(vectors, v)
	}

	profile, ok := domain.MeanVector(vectors)
	if !ok {
		return domain.RecommendationResult{Status: domain.StatusNoMatches}, nil
	}

	ranked := rankTracks(profile, r.catalog.Tracks(), r.scaler, n, excluded)
	if len(ranked) == 0 {
		return domain.RecommendationResult{Status: domain.StatusNoMatches}, nil
	}

	return domain.RecommendationResult{Status: domain.StatusOK, Tracks: ranked}, nil
}

// resolveSeed walks the resolver chain: local catalog first, then the track
// cache, then the external provider with a cache write-back. The catalog tier
// is free and authoritative; the network is the last resort.
func (r *Recommender) resolveSeed(ctx context.Context, seed domain.SeedSong) (domain.Track, seedSource, bool) {
	if track, ok := r.catalog.Lookup(seed.Title, seed.Year); ok {
		return track, sourceCatalog, true
	}

	track, ok, err := r.cache.Get(ctx, seed.Title, seed.Year)
	if err != nil {
		r.logger.Warn().Err(err).Str("title", seed.Title).Msg("track cache lookup failed")
	} else if ok {
		return track, sourceCache, true
	}

	track, err = r.provider.ResolveTrack(ctx, seed.Title, seed.Year)
	if err != nil {
		// One unresolvable seed must not abort a multi-seed request. A
		// transient service failure is treated the same as a clean miss.
		evt := r.logger.Warn().Str("title", seed.Title).Int("year", seed.Year)
		if errors.Is(err, ports.ErrTrackNotFound) {
			evt.Msg("seed not found in catalog or external service")
		} else {
			evt.Err(err).Msg("external resolution failed, dropping seed")
		}
		return domain.Track{}, "", false
	}

	if err := r.cache.Put(ctx, track); err != nil {
		r.logger.Warn().Err(err).Str("title", track.Title).Msg("track cache write failed")
	}
	return track, sourceExternal, true
}
