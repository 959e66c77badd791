package extract

import (
	"regexp"

	"imdbooo/internal/ident"
	"imdbooo/internal/model"
)

var (
	pageIDPattern     = regexp.MustCompile(`pageId.+?["']((?:tt|nm)\w+)["']`)
	identifierPattern = regexp.MustCompile(`/([a-z]{2}\d+)`)
	kindPattern       = regexp.MustCompile(`og:type.+?["'].*?(actor|tv_show|movie)["']`)
	rolePattern       = regexp.MustCompile(`id=["']act(?:or|ress)-(tt\d+)["']`)
)

// PageID returns the identifier the page declares for itself.
func PageID(raw string) (string, bool) {
	m := pageIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IdentifiersIn returns the distinct identifiers linked from raw, in order of
// first appearance. Identifiers with unsupported prefixes are included; the
// caller decides whether they can be fetched.
func IdentifiersIn(raw string) []string {
	return distinct(identifierPattern.FindAllStringSubmatch(raw, -1), nil)
}

// KindOf classifies a page by its og:type meta tag.
func KindOf(raw string) model.Kind {
	m := kindPattern.FindStringSubmatch(raw)
	if m == nil {
		return model.KindUnknown
	}
	switch m[1] {
	case "movie":
		return model.KindMovie
	case "tv_show":
		return model.KindTVShow
	case "actor":
		return model.KindPerson
	default:
		return model.KindUnknown
	}
}

// FilmographyIDs returns the distinct title identifiers listed in a person's
// acting credits.
func FilmographyIDs(raw string) []string {
	return distinct(rolePattern.FindAllStringSubmatch(raw, -1), func(id string) bool {
		return ident.Classify(id) == ident.Title
	})
}

func distinct(matches [][]string, keep func(string) bool) []string {
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		id := m[1]
		if keep != nil && !keep(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
