// Package catalog provides the CSV-backed implementation of the catalog port.
// The file is read once at startup; the resulting table is immutable for the
// lifetime of the process.
package catalog

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
	"github.com/wavelength-labs/tastemaker/internal/core/ports"
)

type catalogKey struct {
	title string
	year  int
}

// Store holds the in-memory track table and an exact-match index.
type Store struct {
	tracks []domain.Track
	index  map[catalogKey]int
}

// compile-time interface assertion
var _ ports.CatalogStore = (*Store)(nil)

// Load reads the catalog CSV. A missing or unparseable file is fatal to the
// engine and is reported as a startup error, never per call.
func Load(path string, logger zerolog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	var rows []csvTrack
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	s := &Store{
		tracks: make([]domain.Track, 0, len(rows)),
		index:  make(map[catalogKey]int, len(rows)),
	}
	skipped := 0
	for _, row := range rows {
		track, ok := row.toDomain()
		if !ok {
			skipped++
			continue
		}
		s.tracks = append(s.tracks, track)
		key := catalogKey{title: track.Title, year: track.Year}
		// Duplicate (title, year) keys keep the row that appears first.
		if _, exists := s.index[key]; !exists {
			s.index[key] = len(s.tracks) - 1
		}
	}
	if len(s.tracks) == 0 {
		return nil, fmt.Errorf("catalog: %s contains no usable rows", path)
	}
	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("catalog rows without title or year dropped")
	}
	logger.Info().Int("tracks", len(s.tracks)).Str("path", path).Msg("catalog loaded")

	return s, nil
}

// Lookup returns the first row matching title and year exactly.
func (s *Store) Lookup(title string, year int) (domain.Track, bool) {
	i, ok := s.index[catalogKey{title: title, year: year}]
	if !ok {
		return domain.Track{}, false
	}
	return s.tracks[i], true
}

// Tracks returns the catalog in file order.
func (s *Store) Tracks() []domain.Track {
	return s.tracks
}
