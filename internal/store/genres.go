package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"imdbooo/internal/model"
)

// GetOrCreateGenre returns the genre with the given name, creating it first
// when missing. Concurrent callers converge on the same row.
func (s *Store) GetOrCreateGenre(ctx context.Context, name string) (model.Genre, error) {
	var genre model.Genre
	err := s.withTx(ctx, func(tx txExecer) error {
		var err error
		genre, err = genreByName(ensureContext(ctx), tx, name)
		return err
	})
	if err != nil {
		return model.Genre{}, err
	}
	return genre, nil
}

func genreByName(ctx context.Context, tx txExecer, name string) (model.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Genre{}, errors.New("genre name is empty")
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO genres (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return model.Genre{}, fmt.Errorf("insert genre %q: %w", name, err)
	}
	genre := model.Genre{Name: name}
	if err := tx.QueryRowContext(ctx, `SELECT id FROM genres WHERE name = ?`, name).Scan(&genre.ID); err != nil {
		return model.Genre{}, fmt.Errorf("read genre %q: %w", name, err)
	}
	return genre, nil
}

// Genres lists every genre with the number of titles linked to it.
func (s *Store) Genres(ctx context.Context) ([]GenreUsage, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT g.id, g.name, COUNT(tg.title_id)
         FROM genres g LEFT JOIN title_genres tg ON tg.genre_id = g.id
         GROUP BY g.id, g.name
         ORDER BY g.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	var usage []GenreUsage
	for rows.Next() {
		var u GenreUsage
		if err := rows.Scan(&u.Genre.ID, &u.Genre.Name, &u.Titles); err != nil {
			return nil, fmt.Errorf("scan genre usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// GenreUsage pairs a genre with the number of titles that reference it.
type GenreUsage struct {
	Genre  model.Genre
	Titles int
}
