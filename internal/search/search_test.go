package search_test

import (
	"context"
	"errors"
	"testing"

	"imdbooo/internal/builder"
	"imdbooo/internal/crawl"
	"imdbooo/internal/ident"
	"imdbooo/internal/model"
	"imdbooo/internal/search"
	"imdbooo/internal/store"
	"imdbooo/internal/testsupport"
)

const suggestURL = testsupport.SiteBaseURL + "/suggests/t/the_matrix.json"

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"the matrix":         "the_matrix",
		"  The   MATRIX  ":   "the_matrix",
		"Amélie":             "amélie",
		"Spider-Man: 2":      "spiderman_2",
		"star_wars":          "star_wars",
		"the - matrix":       "the_matrix",
		"!!! ???":            "",
		"":                   "",
		"\tblade\nrunner ":   "blade_runner",
		"_hidden_":           "_hidden_",
		"___":                "___",
		"_ _":                "___",
		"WALL·E (2008)":      "walle_2008",
		"Ocean's Eleven":     "oceans_eleven",
		"12 Angry Men":       "12_angry_men",
		"Crouching Tiger 卧虎": "crouching_tiger_卧虎",
	}
	for in, want := range tests {
		if got := search.Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

type service struct {
	store   *store.Store
	fetcher *testsupport.FakeFetcher
	svc     *search.Service
}

func newService(t *testing.T) *service {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	fetcher := testsupport.NewFakeFetcher()
	scheme := ident.NewScheme(cfg.Site)
	coord := crawl.New(st, fetcher, builder.New(st, nil), scheme, crawl.Options{})
	return &service{
		store:   st,
		fetcher: fetcher,
		svc:     search.New(st, fetcher, coord, scheme, nil),
	}
}

func drain(t *testing.T, s *search.Service, query string) []model.Entity {
	t.Helper()
	seq, err := s.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("Search(%q): %v", query, err)
	}
	var out []model.Entity
	for e := range seq {
		out = append(out, e)
	}
	return out
}

func TestSearchEmptyQueryFailsBeforeFetch(t *testing.T) {
	s := newService(t)
	for _, q := range []string{"", "   ", "?!"} {
		if _, err := s.svc.Search(context.Background(), q); !errors.Is(err, search.ErrEmptyQuery) {
			t.Fatalf("Search(%q) error = %v, want ErrEmptyQuery", q, err)
		}
	}
	if s.fetcher.Calls() != 0 {
		t.Fatalf("expected no fetches, got %v", s.fetcher.URLs())
	}
}

func TestSearchUnderscoreQueryIsAKey(t *testing.T) {
	s := newService(t)
	underscoreURL := testsupport.SiteBaseURL + "/suggests/_/___.json"
	s.fetcher.
		Page(underscoreURL, testsupport.SearchResponse("___", "tt0133093")).
		Page(testsupport.SiteBaseURL+"/title/tt0133093", testsupport.TitlePage("tt0133093", "movie", "The Matrix", 1999, "8.7"))

	got := drain(t, s.svc, "___")
	if len(got) != 1 || got[0].ID() != "tt0133093" {
		t.Fatalf("unexpected results %v", got)
	}
	if s.fetcher.CallsFor(underscoreURL) != 1 {
		t.Fatalf("expected one search request, got %v", s.fetcher.URLs())
	}
}

func TestSearchFetchesOnceThenServesCache(t *testing.T) {
	s := newService(t)
	s.fetcher.
		Page(suggestURL, testsupport.SearchResponse("the_matrix", "tt0133093", "nm0000206")).
		Page(testsupport.SiteBaseURL+"/title/tt0133093", testsupport.TitlePage("tt0133093", "movie", "The Matrix", 1999, "8.7", "Action", "Sci-Fi")).
		Page(testsupport.SiteBaseURL+"/name/nm0000206", testsupport.PersonPage("nm0000206", "Keanu Reeves", "1964-9-2"))

	first := drain(t, s.svc, "the matrix")
	if len(first) != 2 {
		t.Fatalf("first search returned %d entities", len(first))
	}
	if s.fetcher.CallsFor(suggestURL) != 1 {
		t.Fatalf("expected one search request, got %d", s.fetcher.CallsFor(suggestURL))
	}
	callsAfterFirst := s.fetcher.Calls()

	second := drain(t, s.svc, "The  Matrix")
	if len(second) != 2 {
		t.Fatalf("second search returned %d entities", len(second))
	}
	if s.fetcher.Calls() != callsAfterFirst {
		t.Fatalf("cached search fetched again: %v", s.fetcher.URLs())
	}
}

func TestSearchRecordedResultShortCircuits(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	title := model.NewTitle(&model.Title{ID: "tt0133093", Kind: model.KindMovie, Name: "The Matrix"})
	testsupport.MustPut(t, s.store, title)
	if err := s.store.RecordSearchResult(ctx, "the_matrix", title); err != nil {
		t.Fatalf("RecordSearchResult: %v", err)
	}

	got := drain(t, s.svc, "the matrix")
	if len(got) != 1 || got[0].ID() != "tt0133093" {
		t.Fatalf("unexpected results %+v", got)
	}
	if s.fetcher.Calls() != 0 {
		t.Fatalf("expected no fetches, got %v", s.fetcher.URLs())
	}
}

func TestSearchFetchFailureIsEmpty(t *testing.T) {
	s := newService(t)
	s.fetcher.Fail(suggestURL, errors.New("timeout"))

	if got := drain(t, s.svc, "the matrix"); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestSearchUnreadableResponseIsEmpty(t *testing.T) {
	s := newService(t)
	s.fetcher.Page(suggestURL, "<html>captcha</html>")

	if got := drain(t, s.svc, "the matrix"); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
	if s.fetcher.Calls() != 1 {
		t.Fatalf("expected exactly the search request, got %v", s.fetcher.URLs())
	}
}
