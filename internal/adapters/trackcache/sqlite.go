// Package trackcache provides a SQLite-backed cache of externally resolved
// tracks. A hit saves a round trip to the metadata service; a cache failure
// is only ever a miss.
package trackcache

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // driver
	"github.com/rs/zerolog"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
	"github.com/wavelength-labs/tastemaker/internal/core/ports"
	"github.com/wavelength-labs/tastemaker/internal/telemetry"
)

// Store implements the track cache port on SQLite.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// compile-time interface assertion
var _ ports.TrackCache = (*Store)(nil)

// Open creates the connection and runs the schema migration.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("trackcache: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("trackcache: ping: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("trackcache: migrate: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached track for (title, year), if any.
func (s *Store) Get(ctx context.Context, title string, year int) (domain.Track, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT title, year, artists,
			valence, acousticness, danceability, duration_ms, energy, explicit,
			instrumentalness, key, liveness, loudness, mode, popularity,
			speechiness, tempo
		FROM resolved_tracks
		WHERE title = ? AND year = ?
	`, title, year)

	var t domain.Track
	err := row.Scan(
		&t.Title, &t.Year, &t.Artists,
		&t.Valence, &t.Acousticness, &t.Danceability, &t.DurationMs, &t.Energy,
		&t.Explicit, &t.Instrumentalness, &t.Key, &t.Liveness, &t.Loudness,
		&t.Mode, &t.Popularity, &t.Speechiness, &t.Tempo,
	)
	if err == sql.ErrNoRows {
		telemetry.CacheLookups.WithLabelValues("miss").Inc()
		return domain.Track{}, false, nil
	}
	if err != nil {
		telemetry.CacheLookups.WithLabelValues("error").Inc()
		return domain.Track{}, false, fmt.Errorf("trackcache: get: %w", err)
	}
	telemetry.CacheLookups.WithLabelValues("hit").Inc()
	return t, true, nil
}

// Put upserts a resolved track keyed by (title, year).
func (s *Store) Put(ctx context.Context, t domain.Track) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolved_tracks (
			title, year, artists,
			valence, acousticness, danceability, duration_ms, energy, explicit,
			instrumentalness, key, liveness, loudness, mode, popularity,
			speechiness, tempo
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title, year) DO UPDATE SET
			artists=excluded.artists,
			valence=excluded.valence,
			acousticness=excluded.acousticness,
			danceability=excluded.danceability,
			duration_ms=excluded.duration_ms,
			energy=excluded.energy,
			explicit=excluded.explicit,
			instrumentalness=excluded.instrumentalness,
			key=excluded.key,
			liveness=excluded.liveness,
			loudness=excluded.loudness,
			mode=excluded.mode,
			popularity=excluded.popularity,
			speechiness=excluded.speechiness,
			tempo=excluded.tempo,
			resolved_at=CURRENT_TIMESTAMP;
	`,
		t.Title, t.Year, t.Artists,
		t.Valence, t.Acousticness, t.Danceability, t.DurationMs, t.Energy,
		t.Explicit, t.Instrumentalness, t.Key, t.Liveness, t.Loudness,
		t.Mode, t.Popularity, t.Speechiness, t.Tempo,
	)
	if err != nil {
		return fmt.Errorf("trackcache: put %q: %w", t.Title, err)
	}
	return nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS resolved_tracks (
		title TEXT NOT NULL,
		year INTEGER NOT NULL,
		artists TEXT,
		valence REAL,
		acousticness REAL,
		danceability REAL,
		duration_ms REAL,
		energy REAL,
		explicit REAL,
		instrumentalness REAL,
		key REAL,
		liveness REAL,
		loudness REAL,
		mode REAL,
		popularity REAL,
		speechiness REAL,
		tempo REAL,
		resolved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (title, year)
	);
	`
	_, err := s.db.Exec(query)
	return err
}
