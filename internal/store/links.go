package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"imdbooo/internal/model"
)

// AddCastAssociation links a person to a title. Repeated calls are no-ops.
func (s *Store) AddCastAssociation(ctx context.Context, titleID, personID string) error {
	titleID = strings.TrimSpace(titleID)
	personID = strings.TrimSpace(personID)
	if titleID == "" || personID == "" {
		return errors.New("cast association requires title and person ids")
	}
	if _, err := s.execWithRetry(ctx,
		`INSERT INTO cast_members (title_id, person_id, created_at) VALUES (?, ?, ?) ON CONFLICT DO NOTHING`,
		titleID, personID, nowString(),
	); err != nil {
		return fmt.Errorf("add cast %s -> %s: %w", titleID, personID, err)
	}
	return nil
}

// CastOf returns the people linked to a title.
func (s *Store) CastOf(ctx context.Context, titleID string) ([]model.Entity, error) {
	ctx = ensureContext(ctx)
	ids, err := s.castIDs(ctx, strings.TrimSpace(titleID))
	if err != nil {
		return nil, err
	}
	return s.entities(ctx, ids)
}

// FilmographyOf returns the titles a person is linked to.
func (s *Store) FilmographyOf(ctx context.Context, personID string) ([]model.Entity, error) {
	ctx = ensureContext(ctx)
	ids, err := s.queryIDs(ctx,
		`SELECT title_id FROM cast_members WHERE person_id = ? ORDER BY title_id`,
		strings.TrimSpace(personID),
	)
	if err != nil {
		return nil, err
	}
	return s.entities(ctx, ids)
}

// RecordSearchResult ensures the query row exists and adds the entity to it.
func (s *Store) RecordSearchResult(ctx context.Context, query string, entity *model.Entity) error {
	ctx = ensureContext(ctx)
	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("search query is empty")
	}
	if entity == nil || entity.ID() == "" {
		return ErrIncomplete
	}

	var linkSQL string
	switch entity.Kind {
	case model.KindMovie, model.KindTVShow:
		linkSQL = `INSERT INTO search_result_titles (query, title_id) VALUES (?, ?) ON CONFLICT DO NOTHING`
	case model.KindPerson:
		linkSQL = `INSERT INTO search_result_persons (query, person_id) VALUES (?, ?) ON CONFLICT DO NOTHING`
	default:
		return ErrUnknownKind
	}

	return s.withTx(ctx, func(tx txExecer) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO search_results (query, created_at) VALUES (?, ?) ON CONFLICT(query) DO NOTHING`,
			query, nowString(),
		); err != nil {
			return fmt.Errorf("insert search result %q: %w", query, err)
		}
		if _, err := tx.ExecContext(ctx, linkSQL, query, entity.ID()); err != nil {
			return fmt.Errorf("link %s to search %q: %w", entity.ID(), query, err)
		}
		return nil
	})
}

// SearchResults returns every cached entity recorded under query, titles
// first. The result is empty when the query has never been recorded.
func (s *Store) SearchResults(ctx context.Context, query string) ([]model.Entity, error) {
	ctx = ensureContext(ctx)
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	ids, err := s.queryIDs(ctx,
		`SELECT title_id FROM search_result_titles WHERE query = ?
         UNION ALL
         SELECT person_id FROM search_result_persons WHERE query = ?`,
		query, query,
	)
	if err != nil {
		return nil, fmt.Errorf("search results %q: %w", query, err)
	}
	return s.entities(ctx, ids)
}

// SearchQueries lists the recorded queries, most recent first.
func (s *Store) SearchQueries(ctx context.Context) ([]string, error) {
	return s.queryIDs(ensureContext(ctx), `SELECT query FROM search_results ORDER BY created_at DESC, query`)
}
