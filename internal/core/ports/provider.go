package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

// ErrTrackNotFound indicates the external service has no usable match for a
// seed song. It is an expected, recoverable condition, distinct from
// transport or auth failures which surface as ordinary errors.
var ErrTrackNotFound = errors.New("track not found")

// TrackNotFoundError provides context for a failed external resolution.
type TrackNotFoundError struct {
	Title string
	Year  int
}

func (e TrackNotFoundError) Error() string {
	if e.Title == "" {
		return ErrTrackNotFound.Error()
	}
	return fmt.Sprintf("no track found for title %q year %d", e.Title, e.Year)
}

func (e TrackNotFoundError) Is(target error) bool {
	return target == ErrTrackNotFound
}

// TrackProvider resolves a seed song against an external music metadata
// service, returning its full feature record.
type TrackProvider interface {
	ResolveTrack(ctx context.Context, title string, year int) (domain.Track, error)
}
