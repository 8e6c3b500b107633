package ports

import (
	"context"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

// TrackCache stores externally resolved tracks keyed by (title, year) so that
// repeat seeds skip the network. Implementations must treat their own
// failures as misses; the cache is an optimization, never a dependency.
type TrackCache interface {
	Get(ctx context.Context, title string, year int) (domain.Track, bool, error)
	Put(ctx context.Context, track domain.Track) error
}

// NopTrackCache is used when caching is disabled.
type NopTrackCache struct{}

func (NopTrackCache) Get(context.Context, string, int) (domain.Track, bool, error) {
	return domain.Track{}, false, nil
}

func (NopTrackCache) Put(context.Context, domain.Track) error {
	return nil
}
