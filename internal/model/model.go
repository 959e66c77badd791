// Package model defines the cached entities: titles (movies and TV shows),
// people, and genres.
//
// Entity is a tagged union. Exactly one of Title or Person is set, selected
// by Kind; callers switch on Kind rather than probing the payload pointers.
package model

import (
	"fmt"
	"slices"
	"strings"
)

// Kind discriminates the entity variants.
type Kind string

const (
	KindUnknown Kind = ""
	KindMovie   Kind = "movie"
	KindTVShow  Kind = "tvshow"
	KindPerson  Kind = "person"
)

// IsTitle reports whether the kind is a movie or TV show.
func (k Kind) IsTitle() bool {
	return k == KindMovie || k == KindTVShow
}

// Label returns a human readable kind name.
func (k Kind) Label() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindTVShow:
		return "TV Show"
	case KindPerson:
		return "Person"
	default:
		return "Unknown"
	}
}

// Genre is a named category referenced by titles.
type Genre struct {
	ID   int64
	Name string
}

// Title describes a movie or TV show.
type Title struct {
	ID          string
	Kind        Kind
	Name        string
	Poster      string
	Rating      *float64
	Plot        string
	ReleaseYear int
	// Runtime is the page's display text (for example "2h 16min"); movies only.
	Runtime string
	Genres  []Genre
	// CastIDs lists the people linked to this title through cast associations.
	CastIDs []string
}

// GenreNames returns the genre names sorted alphabetically.
func (t *Title) GenreNames() []string {
	names := make([]string, 0, len(t.Genres))
	for _, g := range t.Genres {
		names = append(names, g.Name)
	}
	slices.Sort(names)
	return names
}

// BirthDate is a calendar date whose month and day may be placeholders.
//
// When the source page only shows a year (or year and month), the missing
// parts are set to 1 and Approximate is true. The value is then a lossy
// placeholder rather than a real birth date.
type BirthDate struct {
	Year        int
	Month       int
	Day         int
	Approximate bool
}

// String formats the date as YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Person describes an actor or other credited person.
type Person struct {
	ID         string
	FirstName  string
	MiddleName string
	LastName   string
	BirthDate  *BirthDate
}

// FullName joins the non-empty name parts.
func (p *Person) FullName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Entity is a cached title or person.
type Entity struct {
	Kind   Kind
	Title  *Title
	Person *Person
}

// NewTitle wraps a title in an Entity, taking the kind from the title.
func NewTitle(t *Title) *Entity {
	return &Entity{Kind: t.Kind, Title: t}
}

// NewPerson wraps a person in an Entity.
func NewPerson(p *Person) *Entity {
	return &Entity{Kind: KindPerson, Person: p}
}

// ID returns the site identifier of the wrapped record.
func (e *Entity) ID() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindMovie, KindTVShow:
		if e.Title != nil {
			return e.Title.ID
		}
	case KindPerson:
		if e.Person != nil {
			return e.Person.ID
		}
	}
	return ""
}

// DisplayName returns the title name or the person's full name.
func (e *Entity) DisplayName() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindMovie, KindTVShow:
		if e.Title != nil {
			return e.Title.Name
		}
	case KindPerson:
		if e.Person != nil {
			return e.Person.FullName()
		}
	}
	return ""
}

// Valid reports whether the payload matches the kind.
func (e *Entity) Valid() bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindMovie, KindTVShow:
		return e.Title != nil && e.Person == nil && e.Title.Kind == e.Kind && e.Title.ID != ""
	case KindPerson:
		return e.Person != nil && e.Title == nil && e.Person.ID != ""
	default:
		return false
	}
}
