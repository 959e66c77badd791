package testsupport

import (
	"fmt"
	"strings"
)

// TitlePage renders a minimal mobile title page with the markers the
// extractors read. Pass kind "movie" or "tv_show".
func TitlePage(id, kind, name string, year int, rating string, genres ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html><head>\n<meta property=\"og:type\" content=\"video.%s\" />\n", kind)
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s (%d) - IMDb\" />\n", name, year)
	fmt.Fprintf(&b, "<script>window.state = { pageId: \"%s\" };</script>\n</head><body>\n", id)
	fmt.Fprintf(&b, "<div class=\"sub-header\">\n  (%d)\n</div>\n", year)
	if rating != "" {
		fmt.Fprintf(&b, "<span>%s</span><span>/10</span>\n", rating)
	}
	for _, genre := range genres {
		fmt.Fprintf(&b, "<span itemprop=\"genre\">%s</span>\n", genre)
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

// PersonPage renders a minimal person page with a birth date and acting
// credits for titleIDs.
func PersonPage(id, name, birthDate string, titleIDs ...string) string {
	var b strings.Builder
	b.WriteString("<html><head>\n<meta property=\"og:type\" content=\"actor\" />\n")
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\" />\n", name)
	fmt.Fprintf(&b, "<script>window.state = { pageId: \"%s\" };</script>\n</head><body>\n", id)
	if birthDate != "" {
		fmt.Fprintf(&b, "<time datetime=\"%s\">born</time>\n", birthDate)
	}
	for _, titleID := range titleIDs {
		fmt.Fprintf(&b, "<div class=\"filmo-row\" id=\"actor-%s\">credit</div>\n", titleID)
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

// CastPage renders a full-credits page listing personIDs.
func CastPage(personIDs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><div id=\"fullcredits-content\">\n")
	for _, id := range personIDs {
		fmt.Fprintf(&b, "<a href=\"/name/%s/?ref_=fc\">cast</a>\n", id)
	}
	b.WriteString("</div></body></html>\n")
	return b.String()
}

// LinkPage renders a page linking to every id under /title/ or /name/.
func LinkPage(ids ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	for _, id := range ids {
		section := "title"
		if strings.HasPrefix(id, "nm") {
			section = "name"
		}
		fmt.Fprintf(&b, "<a href=\"/%s/%s/\">%s</a>\n", section, id, id)
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

// SearchResponse renders a JSONP suggestion payload for ids.
func SearchResponse(query string, ids ...string) string {
	stubs := make([]string, 0, len(ids))
	for _, id := range ids {
		stubs = append(stubs, fmt.Sprintf(`{"id":%q,"l":%q}`, id, id))
	}
	return fmt.Sprintf(`imdb$%s({"v":1,"q":%q,"d":[%s]})`, query, query, strings.Join(stubs, ","))
}
