package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"imdbooo/internal/model"
)

var (
	fullNamePattern  = regexp.MustCompile(`og:title.+?["'](.+?)["']\s`)
	birthDatePattern = regexp.MustCompile(`time datetime=['"](\d{4})-(\d{1,2})-(\d{1,2})['"]`)
)

// NameParts holds a person's name split on the first two spaces.
type NameParts struct {
	First  string
	Middle string
	Last   string
}

// FullName splits the og:title name into first, middle and last parts. A
// single word yields only a first name; two words a first and last name; the
// remainder after the second space becomes the last name.
func FullName(raw string) (NameParts, bool) {
	m := fullNamePattern.FindStringSubmatch(raw)
	if m == nil {
		return NameParts{}, false
	}
	groups := strings.SplitN(strings.TrimSpace(m[1]), " ", 3)
	var parts NameParts
	switch len(groups) {
	case 1:
		parts.First = groups[0]
	case 2:
		parts.First, parts.Last = groups[0], groups[1]
	case 3:
		parts.First, parts.Middle, parts.Last = groups[0], groups[1], groups[2]
	}
	return parts, parts.First != ""
}

// BirthDate returns the birth date from the page's time element. Pages that
// omit the month or day render them as 0; those parts become 1 and the date
// is flagged approximate.
func BirthDate(raw string) (model.BirthDate, bool) {
	m := birthDatePattern.FindStringSubmatch(raw)
	if m == nil {
		return model.BirthDate{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	date := model.BirthDate{Year: year, Month: month, Day: day}
	if date.Month == 0 {
		date.Month = 1
		date.Approximate = true
	}
	if date.Day == 0 {
		date.Day = 1
		date.Approximate = true
	}

	// Reject values time.Date would normalize into another day.
	check := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, time.UTC)
	if year <= 0 || check.Year() != date.Year || int(check.Month()) != date.Month || check.Day() != date.Day {
		return model.BirthDate{}, false
	}
	return date, true
}
