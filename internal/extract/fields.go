package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	titlePattern   = regexp.MustCompile(`og:title.+?["'](.+?)\s+?\(.+?["']`)
	posterPattern  = regexp.MustCompile(`og:image.+?["'](http.+?)["']`)
	ratingPattern  = regexp.MustCompile(`(\d+\.\d*)<.+?/\d+`)
	runtimePattern = regexp.MustCompile(`(?s)datetime=.+?\s+([\d\s\w]+?)\n`)
	plotPattern    = regexp.MustCompile(`(?s)plot-description['"]>\s+(.+?)(?:\.{3}\s?<a href.+?)?</p>`)
	yearPattern    = regexp.MustCompile(`(?s)sub-header["']>\s+\((\d{4})[^)]*\)`)
	genrePattern   = regexp.MustCompile(`itemprop=['"]genre['"]>([\w\-]+?)<`)
)

const (
	minRating = 0.0
	maxRating = 10.0
)

// TitleText returns the title name from the og:title tag, without the
// parenthesised year suffix.
func TitleText(raw string) (string, bool) {
	m := titlePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(strings.ReplaceAll(m[1], "TV Series ", ""))
	return name, name != ""
}

// Poster returns the absolute poster image URL.
func Poster(raw string) (string, bool) {
	m := posterPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Rating returns the user rating. Values outside 0–10 are treated as missing.
func Rating(raw string) (float64, bool) {
	m := ratingPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value < minRating || value > maxRating {
		return 0, false
	}
	return value, true
}

// Runtime returns the runtime display text, for example "2h 16min".
func Runtime(raw string) (string, bool) {
	m := runtimePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	return value, value != ""
}

// Plot returns the plot summary, without the "read more" link.
func Plot(raw string) (string, bool) {
	m := plotPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	return value, value != ""
}

// ReleaseYear returns the year shown in the page sub-header.
func ReleaseYear(raw string) (int, bool) {
	m := yearPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

// GenreNames returns the distinct genre names in order of appearance.
func GenreNames(raw string) []string {
	return distinct(genrePattern.FindAllStringSubmatch(raw, -1), nil)
}
