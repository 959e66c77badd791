package store

import (
	"context"
	"fmt"
)

// Stats holds row counts per table, for diagnostics.
type Stats struct {
	Movies    int
	TVShows   int
	People    int
	Genres    int
	CastLinks int
	Searches  int
}

// Total returns the number of cached entities.
func (s Stats) Total() int {
	return s.Movies + s.TVShows + s.People
}

// Stats returns the current row counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT
            (SELECT COUNT(1) FROM titles WHERE kind = 'movie'),
            (SELECT COUNT(1) FROM titles WHERE kind = 'tvshow'),
            (SELECT COUNT(1) FROM persons),
            (SELECT COUNT(1) FROM genres),
            (SELECT COUNT(1) FROM cast_members),
            (SELECT COUNT(1) FROM search_results)`,
	).Scan(&stats.Movies, &stats.TVShows, &stats.People, &stats.Genres, &stats.CastLinks, &stats.Searches)
	if err != nil {
		return Stats{}, fmt.Errorf("store stats: %w", err)
	}
	return stats, nil
}
