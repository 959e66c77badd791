package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"imdbooo/internal/ident"
)

const creditsSelector = "#fullcredits-content a"

// CastIDs returns the distinct person identifiers linked from the
// full-credits container of a cast page.
func CastIDs(raw string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var ids []string
	doc.Find(creditsSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		id := idFromHref(href)
		if ident.Classify(id) != ident.Person {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	})
	return ids
}

// idFromHref returns the identifier segment of links such as
// "/name/nm0000206/?ref_=fc_cl".
func idFromHref(href string) string {
	href = strings.TrimSpace(href)
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	parts := strings.SplitN(href, "/", 4)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
