// Package builder turns raw page text into model entities.
//
// Build classifies the page, then hands it to the kind-specific constructor.
// A page whose kind is unknown, or that lacks a required field, yields no
// entity; that is a normal outcome for unexpected pages and is logged at
// debug level only.
package builder

import (
	"context"
	"log/slog"

	"imdbooo/internal/extract"
	"imdbooo/internal/logging"
	"imdbooo/internal/model"
)

// GenreStore resolves genre names to persisted rows.
type GenreStore interface {
	GetOrCreateGenre(ctx context.Context, name string) (model.Genre, error)
}

// Builder constructs entities from raw page text.
type Builder struct {
	genres GenreStore
	logger *slog.Logger
}

// New returns a builder that resolves genres through genres.
func New(genres GenreStore, logger *slog.Logger) *Builder {
	return &Builder{
		genres: genres,
		logger: logging.NewComponentLogger(logger, "builder"),
	}
}

// Build returns the entity described by raw. The boolean is false when the
// page kind is unknown, a required field is missing, or genres could not be
// resolved.
func (b *Builder) Build(ctx context.Context, raw string) (*model.Entity, bool) {
	logger := logging.WithContext(ctx, b.logger)
	kind := extract.KindOf(raw)
	switch kind {
	case model.KindMovie, model.KindTVShow:
		title, ok := b.buildTitle(ctx, logger, kind, raw)
		if !ok {
			return nil, false
		}
		return model.NewTitle(title), true
	case model.KindPerson:
		person, ok := buildPerson(logger, raw)
		if !ok {
			return nil, false
		}
		return model.NewPerson(person), true
	default:
		logger.Debug("page kind not recognized")
		return nil, false
	}
}

func (b *Builder) buildTitle(ctx context.Context, logger *slog.Logger, kind model.Kind, raw string) (*model.Title, bool) {
	id, ok := extract.PageID(raw)
	if !ok {
		logger.Debug("title page has no id", logging.String("kind", string(kind)))
		return nil, false
	}
	logger = logger.With(logging.String(logging.FieldEntityID, id))

	name, ok := extract.TitleText(raw)
	if !ok {
		logger.Debug("title page has no name")
		return nil, false
	}

	title := &model.Title{ID: id, Kind: kind, Name: name}
	if rating, ok := extract.Rating(raw); ok {
		title.Rating = &rating
	}
	if year, ok := extract.ReleaseYear(raw); ok {
		title.ReleaseYear = year
	}
	title.Plot, _ = extract.Plot(raw)
	title.Poster, _ = extract.Poster(raw)
	if kind == model.KindMovie {
		title.Runtime, _ = extract.Runtime(raw)
	}

	genres, err := b.resolveGenres(ctx, extract.GenreNames(raw))
	if err != nil {
		logging.WarnWithContext(logger, "genre lookup failed",
			"builder.genre_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the database is writable"),
		)
		return nil, false
	}
	title.Genres = genres
	return title, true
}

// resolveGenres calls the genre store once per distinct name.
func (b *Builder) resolveGenres(ctx context.Context, names []string) ([]model.Genre, error) {
	if len(names) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(names))
	genres := make([]model.Genre, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		genre, err := b.genres.GetOrCreateGenre(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

func buildPerson(logger *slog.Logger, raw string) (*model.Person, bool) {
	id, ok := extract.PageID(raw)
	if !ok {
		logger.Debug("person page has no id")
		return nil, false
	}
	name, ok := extract.FullName(raw)
	if !ok {
		logger.Debug("person page has no name", logging.String(logging.FieldEntityID, id))
		return nil, false
	}

	person := &model.Person{
		ID:         id,
		FirstName:  name.First,
		MiddleName: name.Middle,
		LastName:   name.Last,
	}
	if date, ok := extract.BirthDate(raw); ok {
		person.BirthDate = &date
	}
	return person, true
}
