package model_test

import (
	"slices"
	"testing"

	"imdbooo/internal/model"
)

func TestEntityAccessors(t *testing.T) {
	rating := 8.7
	title := model.NewTitle(&model.Title{ID: "tt0133093", Kind: model.KindMovie, Name: "The Matrix", Rating: &rating})
	if title.ID() != "tt0133093" || title.DisplayName() != "The Matrix" {
		t.Fatalf("unexpected title accessors: %q %q", title.ID(), title.DisplayName())
	}
	if !title.Valid() || !title.Kind.IsTitle() {
		t.Fatal("expected valid title entity")
	}

	person := model.NewPerson(&model.Person{ID: "nm0000206", FirstName: "Keanu", LastName: "Reeves"})
	if person.DisplayName() != "Keanu Reeves" {
		t.Fatalf("unexpected person name: %q", person.DisplayName())
	}
	if person.Kind.IsTitle() {
		t.Fatal("person must not be a title kind")
	}
}

func TestEntityValidRejectsMismatchedPayload(t *testing.T) {
	cases := []*model.Entity{
		nil,
		{Kind: model.KindUnknown},
		{Kind: model.KindMovie, Person: &model.Person{ID: "nm1"}},
		{Kind: model.KindTVShow, Title: &model.Title{ID: "tt1", Kind: model.KindMovie}},
		{Kind: model.KindPerson, Person: &model.Person{}},
	}
	for i, e := range cases {
		if e.Valid() {
			t.Fatalf("case %d: expected invalid entity", i)
		}
	}
}

func TestGenreNamesSorted(t *testing.T) {
	title := &model.Title{Genres: []model.Genre{{ID: 2, Name: "Sci-Fi"}, {ID: 1, Name: "Action"}}}
	if got := title.GenreNames(); !slices.Equal(got, []string{"Action", "Sci-Fi"}) {
		t.Fatalf("unexpected genre names: %v", got)
	}
}

func TestBirthDateString(t *testing.T) {
	d := model.BirthDate{Year: 1964, Month: 9, Day: 2}
	if d.String() != "1964-09-02" {
		t.Fatalf("unexpected date string: %q", d.String())
	}
}
