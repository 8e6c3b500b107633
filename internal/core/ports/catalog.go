package ports

import "github.com/wavelength-labs/tastemaker/internal/core/domain"

// CatalogStore is the read side of the preloaded track catalog. Both methods
// are side-effect free and safe for concurrent use.
type CatalogStore interface {
	// Lookup returns the first catalog row matching title and year exactly.
	Lookup(title string, year int) (domain.Track, bool)
	// Tracks returns the catalog in load order. Callers must not mutate it.
	Tracks() []domain.Track
}
