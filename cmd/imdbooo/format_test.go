package main

import (
	"testing"

	"imdbooo/internal/model"
)

func TestFormatEntity(t *testing.T) {
	rating := 9.3
	opts := &outputOptions{titleFormat: defaultTitleFormat, personFormat: defaultPersonFormat}

	cases := []struct {
		name   string
		format string
		entity *model.Entity
		want   string
	}{
		{
			name:   "movie defaults",
			entity: model.NewTitle(&model.Title{ID: "tt0111161", Kind: model.KindMovie, Name: "The Shawshank Redemption", ReleaseYear: 1994, Rating: &rating}),
			want:   "tt0111161 The Shawshank Redemption 1994 9.3",
		},
		{
			name:   "show without year or rating",
			entity: model.NewTitle(&model.Title{ID: "tt0306414", Kind: model.KindTVShow, Name: "The Wire"}),
			want:   "tt0306414 The Wire N/A N/A",
		},
		{
			name:   "custom title placeholders",
			format: "{title}: {plot} [{genres}] {unknown}",
			entity: model.NewTitle(&model.Title{ID: "tt1", Kind: model.KindMovie, Name: "X", Plot: "p", Genres: []model.Genre{{Name: "Drama"}, {Name: "Crime"}}}),
			want:   "X: p [Crime, Drama] {unknown}",
		},
		{
			name:   "person without last name",
			entity: model.NewPerson(&model.Person{ID: "nm1", FirstName: "Cher"}),
			want:   "nm1 Cher N/A",
		},
		{
			name:   "person middle name",
			format: "{firstname} {middlename} {lastname}",
			entity: model.NewPerson(&model.Person{ID: "nm2", FirstName: "Carrie-Anne", MiddleName: "Moss", LastName: "Thomson"}),
			want:   "Carrie-Anne Moss Thomson",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := *opts
			if tc.format != "" {
				if tc.entity.Kind == model.KindPerson {
					o.personFormat = tc.format
				} else {
					o.titleFormat = tc.format
				}
			}
			if got := o.formatEntity(*tc.entity); got != tc.want {
				t.Fatalf("formatEntity() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnbalancedFormatRejected(t *testing.T) {
	_, _, err := runCLI(t, []string{"--format-title", "{id} {title", "stats"}, "")
	if err == nil {
		t.Fatal("expected error for unbalanced braces")
	}
	requireContains(t, err.Error(), "--format-title")

	_, _, err = runCLI(t, []string{"--format-person", "id}", "stats"}, "")
	if err == nil {
		t.Fatal("expected error for unbalanced braces")
	}
	requireContains(t, err.Error(), "--format-person")
}
