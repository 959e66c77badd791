// Package search answers free-text queries from the search-result cache,
// falling back to one request against the suggestion endpoint.
package search

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"imdbooo/internal/extract"
	"imdbooo/internal/fetch"
	"imdbooo/internal/ident"
	"imdbooo/internal/logging"
	"imdbooo/internal/model"
)

// ErrEmptyQuery is returned when a query has no letters, digits or underscores.
var ErrEmptyQuery = errors.New("search query is empty after normalization")

var lower = cases.Lower(language.Und)

// Normalize lowercases query, joins whitespace-separated words with "_" and
// drops every other character that is not a letter, digit or underscore.
func Normalize(query string) string {
	var words []string
	for _, field := range strings.Fields(lower.String(query)) {
		word := strings.Map(func(r rune) rune {
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, field)
		if word != "" {
			words = append(words, word)
		}
	}
	return strings.Join(words, "_")
}

// ResultStore reads cached search results.
type ResultStore interface {
	SearchResults(ctx context.Context, query string) ([]model.Entity, error)
}

// QueryResolver resolves and records the stubs of a suggestion response.
type QueryResolver interface {
	ModelsFromQueryResult(ctx context.Context, result extract.SearchResponse) iter.Seq[model.Entity]
}

// Service is the query front of the crawler.
type Service struct {
	store    ResultStore
	fetcher  fetch.Fetcher
	resolver QueryResolver
	scheme   ident.Scheme
	logger   *slog.Logger
}

// New wires a search service.
func New(st ResultStore, fetcher fetch.Fetcher, resolver QueryResolver, scheme ident.Scheme, logger *slog.Logger) *Service {
	return &Service{
		store:    st,
		fetcher:  fetcher,
		resolver: resolver,
		scheme:   scheme,
		logger:   logging.NewComponentLogger(logger, "search"),
	}
}

// Search returns the entities matching query. Cached results are returned
// without network access. Otherwise the suggestion endpoint is fetched once
// and its stubs are resolved lazily as the sequence is consumed. A failed
// fetch or an unreadable response yields an empty sequence.
func (s *Service) Search(ctx context.Context, query string) (iter.Seq[model.Entity], error) {
	normalized := Normalize(query)
	if normalized == "" {
		return nil, ErrEmptyQuery
	}
	logger := logging.WithContext(ctx, s.logger).With(logging.String(logging.FieldQuery, normalized))

	cached, err := s.store.SearchResults(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("read cached search results: %w", err)
	}
	if len(cached) > 0 {
		logger.Debug("search cache hit", logging.Int("results", len(cached)))
		return slices.Values(cached), nil
	}

	url, _ := s.scheme.SearchQueryURL(normalized)
	raw, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		logging.WarnWithContext(logger, "search request failed",
			"search.fetch_failed",
			logging.String(logging.FieldURL, url),
			logging.Error(err),
			logging.String(logging.FieldImpact, "no results returned"),
		)
		return emptySeq, nil
	}

	resp, err := extract.ParseSearchResponse(raw)
	if err != nil {
		logging.WarnWithContext(logger, "search response unreadable",
			"search.parse_failed",
			logging.String(logging.FieldURL, url),
			logging.Error(err),
			logging.String(logging.FieldImpact, "no results returned"),
		)
		return emptySeq, nil
	}
	// Results are cached under our key, not the endpoint's echo of it.
	resp.Query = normalized
	logger.Debug("search response parsed", logging.Int("stubs", len(resp.Results)))
	return s.resolver.ModelsFromQueryResult(ctx, resp), nil
}

func emptySeq(func(model.Entity) bool) {}
