package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"imdbooo/internal/model"
)

// InsertResult is the outcome of Put.
type InsertResult int

const (
	// Failed means the entity was rejected or the write errored.
	Failed InsertResult = iota
	// Inserted means a new row was written.
	Inserted
	// AlreadyExists means a row with the same id was already present.
	AlreadyExists
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case AlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}

var (
	// ErrUnknownKind is returned when an entity's kind is not a title or person.
	ErrUnknownKind = errors.New("unknown entity kind")
	// ErrIncomplete is returned when an entity lacks its required fields.
	ErrIncomplete = errors.New("entity is missing required fields")
)

const (
	titleColumns  = "id, kind, name, poster, rating, plot, release_year, runtime"
	personColumns = "id, first_name, middle_name, last_name, birth_date, birth_date_approximate"
)

// Get returns the title or person with the given id, or nil when absent.
// Malformed ids are reported as absent.
func (s *Store) Get(ctx context.Context, id string) (*model.Entity, error) {
	ctx = ensureContext(ctx)
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	title, err := s.getTitle(ctx, id)
	if err != nil {
		return nil, err
	}
	if title != nil {
		return model.NewTitle(title), nil
	}

	person, err := s.getPerson(ctx, id)
	if err != nil {
		return nil, err
	}
	if person != nil {
		return model.NewPerson(person), nil
	}
	return nil, nil
}

func (s *Store) getTitle(ctx context.Context, id string) (*model.Title, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+titleColumns+` FROM titles WHERE id = ?`, id)
	title, err := scanTitle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get title %s: %w", id, err)
	}

	if title.Genres, err = s.titleGenres(ctx, id); err != nil {
		return nil, err
	}
	if title.CastIDs, err = s.castIDs(ctx, id); err != nil {
		return nil, err
	}
	return title, nil
}

func (s *Store) getPerson(ctx context.Context, id string) (*model.Person, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM persons WHERE id = ?`, id)
	person, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person %s: %w", id, err)
	}
	return person, nil
}

func (s *Store) titleGenres(ctx context.Context, titleID string) ([]model.Genre, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name FROM genres g
         JOIN title_genres tg ON tg.genre_id = g.id
         WHERE tg.title_id = ?
         ORDER BY g.name`,
		titleID,
	)
	if err != nil {
		return nil, fmt.Errorf("load genres for %s: %w", titleID, err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (s *Store) castIDs(ctx context.Context, titleID string) ([]string, error) {
	return s.queryIDs(ctx, `SELECT person_id FROM cast_members WHERE title_id = ? ORDER BY person_id`, titleID)
}

func (s *Store) queryIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// entities resolves ids in order, dropping any that are no longer present.
func (s *Store) entities(ctx context.Context, ids []string) ([]model.Entity, error) {
	var out []model.Entity
	for _, id := range ids {
		entity, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if entity == nil {
			continue
		}
		out = append(out, *entity)
	}
	return out, nil
}

// Put inserts an entity. An existing row with the same id is left untouched
// and reported as AlreadyExists. A title's row and its genre links are written
// in one transaction; genres without an ID are resolved by name.
func (s *Store) Put(ctx context.Context, entity *model.Entity) (InsertResult, error) {
	ctx = ensureContext(ctx)
	if entity == nil {
		return Failed, ErrIncomplete
	}
	switch entity.Kind {
	case model.KindMovie, model.KindTVShow:
		if !entity.Valid() || strings.TrimSpace(entity.Title.Name) == "" {
			return Failed, ErrIncomplete
		}
		return s.putTitle(ctx, entity.Title)
	case model.KindPerson:
		if !entity.Valid() || strings.TrimSpace(entity.Person.FirstName) == "" {
			return Failed, ErrIncomplete
		}
		return s.putPerson(ctx, entity.Person)
	default:
		return Failed, ErrUnknownKind
	}
}

func (s *Store) putTitle(ctx context.Context, title *model.Title) (InsertResult, error) {
	result := Failed
	err := s.withTx(ctx, func(tx txExecer) error {
		result = Failed
		res, err := tx.ExecContext(ctx,
			`INSERT INTO titles (`+titleColumns+`, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
             ON CONFLICT(id) DO NOTHING`,
			title.ID,
			string(title.Kind),
			title.Name,
			nullableString(title.Poster),
			nullableFloat(title.Rating),
			nullableString(title.Plot),
			nullableInt(title.ReleaseYear),
			nullableString(title.Runtime),
			nowString(),
		)
		if err != nil {
			return fmt.Errorf("insert title %s: %w", title.ID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			result = AlreadyExists
			return nil
		}

		for _, genre := range title.Genres {
			genreID := genre.ID
			if genreID == 0 {
				resolved, err := genreByName(ctx, tx, genre.Name)
				if err != nil {
					return err
				}
				genreID = resolved.ID
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO title_genres (title_id, genre_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
				title.ID, genreID,
			); err != nil {
				return fmt.Errorf("link genre %d to %s: %w", genreID, title.ID, err)
			}
		}
		result = Inserted
		return nil
	})
	if err != nil {
		return Failed, err
	}
	return result, nil
}

func (s *Store) putPerson(ctx context.Context, person *model.Person) (InsertResult, error) {
	var (
		birthDate   any
		approximate bool
	)
	if person.BirthDate != nil {
		birthDate = person.BirthDate.String()
		approximate = person.BirthDate.Approximate
	}

	res, err := s.execWithRetry(ctx,
		`INSERT INTO persons (`+personColumns+`, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO NOTHING`,
		person.ID,
		person.FirstName,
		nullableString(person.MiddleName),
		nullableString(person.LastName),
		birthDate,
		boolToInt(approximate),
		nowString(),
	)
	if err != nil {
		return Failed, fmt.Errorf("insert person %s: %w", person.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Failed, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return AlreadyExists, nil
	}
	return Inserted, nil
}

func scanTitle(scanner interface{ Scan(dest ...any) error }) (*model.Title, error) {
	var (
		title   model.Title
		kind    string
		poster  sql.NullString
		rating  sql.NullFloat64
		plot    sql.NullString
		year    sql.NullInt64
		runtime sql.NullString
	)
	if err := scanner.Scan(&title.ID, &kind, &title.Name, &poster, &rating, &plot, &year, &runtime); err != nil {
		return nil, err
	}
	title.Kind = model.Kind(kind)
	title.Poster = poster.String
	title.Rating = floatPtr(rating)
	title.Plot = plot.String
	title.ReleaseYear = int(year.Int64)
	title.Runtime = runtime.String
	return &title, nil
}

func scanPerson(scanner interface{ Scan(dest ...any) error }) (*model.Person, error) {
	var (
		person      model.Person
		middle      sql.NullString
		last        sql.NullString
		birthRaw    sql.NullString
		approximate int
	)
	if err := scanner.Scan(&person.ID, &person.FirstName, &middle, &last, &birthRaw, &approximate); err != nil {
		return nil, err
	}
	person.MiddleName = middle.String
	person.LastName = last.String
	if birthRaw.Valid {
		var date model.BirthDate
		if _, err := fmt.Sscanf(birthRaw.String, "%d-%d-%d", &date.Year, &date.Month, &date.Day); err == nil {
			date.Approximate = approximate != 0
			person.BirthDate = &date
		}
	}
	return &person, nil
}
