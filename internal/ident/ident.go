// Package ident classifies site identifiers and derives the URLs they are
// fetched from.
//
// Identifiers are opaque strings whose two-letter prefix names the entity
// kind: "tt" for titles and "nm" for people. Other prefixes exist on the site
// (companies, characters, lists) but are not crawled; callers must skip them.
package ident

import (
	"net/url"
	"strings"

	"imdbooo/internal/config"
)

// Kind is the entity family an identifier belongs to.
type Kind int

const (
	Unknown Kind = iota
	Title
	Person
)

func (k Kind) String() string {
	switch k {
	case Title:
		return "title"
	case Person:
		return "person"
	default:
		return "unknown"
	}
}

const (
	titlePrefix  = "tt"
	personPrefix = "nm"
)

// Classify returns the kind encoded in the identifier prefix.
func Classify(id string) Kind {
	id = strings.TrimSpace(id)
	if len(id) <= 2 {
		return Unknown
	}
	switch id[:2] {
	case titlePrefix:
		return Title
	case personPrefix:
		return Person
	default:
		return Unknown
	}
}

// Scheme builds fetchable URLs for identifiers.
type Scheme struct {
	BaseURL            string
	FilmographyBaseURL string
	SearchURL          string
}

// NewScheme returns the scheme configured for the crawled site.
func NewScheme(site config.Site) Scheme {
	return Scheme{
		BaseURL:            strings.TrimRight(site.BaseURL, "/"),
		FilmographyBaseURL: strings.TrimRight(site.FilmographyBaseURL, "/"),
		SearchURL:          strings.TrimRight(site.SearchURL, "/"),
	}
}

// CanonicalURL returns the page URL for a title or person. The boolean is
// false for unsupported prefixes, which must not be fetched.
func (s Scheme) CanonicalURL(id string) (string, bool) {
	id = strings.TrimSpace(id)
	switch Classify(id) {
	case Title:
		return s.BaseURL + "/title/" + url.PathEscape(id), true
	case Person:
		return s.BaseURL + "/name/" + url.PathEscape(id), true
	default:
		return "", false
	}
}

// CastURL returns the full-credits page listing a title's cast.
func (s Scheme) CastURL(titleID string) (string, bool) {
	if Classify(titleID) != Title {
		return "", false
	}
	return s.BaseURL + "/title/" + url.PathEscape(strings.TrimSpace(titleID)) + "/fullcredits/cast", true
}

// FilmographyURL returns the page listing the titles a person acted in.
func (s Scheme) FilmographyURL(personID string) (string, bool) {
	if Classify(personID) != Person {
		return "", false
	}
	return s.FilmographyBaseURL + "/name/" + url.PathEscape(strings.TrimSpace(personID)), true
}

// SearchQueryURL returns the suggestion endpoint for an already normalized query.
// The endpoint shards results by the first character of the query.
func (s Scheme) SearchQueryURL(normalized string) (string, bool) {
	if normalized == "" {
		return "", false
	}
	first := []rune(normalized)[0]
	return s.SearchURL + "/" + url.PathEscape(string(first)) + "/" + url.PathEscape(normalized) + ".json", true
}
