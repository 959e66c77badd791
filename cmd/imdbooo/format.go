package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"imdbooo/internal/model"
)

const (
	defaultTitleFormat  = "{id} {title} {year} {rating}"
	defaultPersonFormat = "{id} {firstname} {lastname}"

	notAvailable = "N/A"
)

type outputOptions struct {
	titleFormat  string
	personFormat string
	json         bool
}

func (o *outputOptions) validate() error {
	if err := checkBraces("--format-title", o.titleFormat); err != nil {
		return err
	}
	return checkBraces("--format-person", o.personFormat)
}

func checkBraces(flag, format string) error {
	if strings.Count(format, "{") != strings.Count(format, "}") {
		return fmt.Errorf("%s must contain an equal number of opening and closing braces", flag)
	}
	return nil
}

// formatEntity expands the placeholders of the matching format string.
// Unknown placeholders are left as written.
func (o *outputOptions) formatEntity(entity model.Entity) string {
	switch entity.Kind {
	case model.KindMovie, model.KindTVShow:
		t := entity.Title
		return strings.NewReplacer(
			"{id}", t.ID,
			"{title}", t.Name,
			"{year}", yearText(t.ReleaseYear),
			"{rating}", ratingText(t.Rating),
			"{plot}", orNA(t.Plot),
			"{poster}", orNA(t.Poster),
			"{runtime}", orNA(t.Runtime),
			"{genres}", orNA(strings.Join(t.GenreNames(), ", ")),
		).Replace(o.titleFormat)
	case model.KindPerson:
		p := entity.Person
		birth := notAvailable
		if p.BirthDate != nil {
			birth = p.BirthDate.String()
		}
		return strings.NewReplacer(
			"{id}", p.ID,
			"{firstname}", p.FirstName,
			"{middlename}", orNA(p.MiddleName),
			"{lastname}", orNA(p.LastName),
			"{birthdate}", birth,
		).Replace(o.personFormat)
	default:
		return entity.ID()
	}
}

func yearText(year int) string {
	if year == 0 {
		return notAvailable
	}
	return strconv.Itoa(year)
}

func ratingText(rating *float64) string {
	if rating == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

// entityView is the JSON shape of a cached entity.
type entityView struct {
	ID                   string   `json:"id"`
	Kind                 string   `json:"kind"`
	Title                string   `json:"title,omitempty"`
	ReleaseYear          int      `json:"release_year,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	Runtime              string   `json:"runtime,omitempty"`
	Plot                 string   `json:"plot,omitempty"`
	Poster               string   `json:"poster,omitempty"`
	Genres               []string `json:"genres,omitempty"`
	Cast                 []string `json:"cast,omitempty"`
	FirstName            string   `json:"first_name,omitempty"`
	MiddleName           string   `json:"middle_name,omitempty"`
	LastName             string   `json:"last_name,omitempty"`
	BirthDate            string   `json:"birth_date,omitempty"`
	BirthDateApproximate bool     `json:"birth_date_approximate,omitempty"`
}

func newEntityView(entity model.Entity) entityView {
	view := entityView{ID: entity.ID(), Kind: string(entity.Kind)}
	switch entity.Kind {
	case model.KindMovie, model.KindTVShow:
		t := entity.Title
		view.Title = t.Name
		view.ReleaseYear = t.ReleaseYear
		view.Rating = t.Rating
		view.Runtime = t.Runtime
		view.Plot = t.Plot
		view.Poster = t.Poster
		if len(t.Genres) > 0 {
			view.Genres = t.GenreNames()
		}
		view.Cast = t.CastIDs
	case model.KindPerson:
		p := entity.Person
		view.FirstName = p.FirstName
		view.MiddleName = p.MiddleName
		view.LastName = p.LastName
		if p.BirthDate != nil {
			view.BirthDate = p.BirthDate.String()
			view.BirthDateApproximate = p.BirthDate.Approximate
		}
	}
	return view
}

// entityPrinter writes entities as formatted lines, or collects them for a
// single JSON array when --json is set.
type entityPrinter struct {
	cmd   *cobra.Command
	opts  *outputOptions
	views []entityView
	count int
}

func newEntityPrinter(cmd *cobra.Command, opts *outputOptions) *entityPrinter {
	return &entityPrinter{cmd: cmd, opts: opts, views: []entityView{}}
}

func (p *entityPrinter) print(entity model.Entity) {
	p.count++
	if p.opts.json {
		p.views = append(p.views, newEntityView(entity))
		return
	}
	fmt.Fprintln(p.out(), p.opts.formatEntity(entity))
}

func (p *entityPrinter) flush() error {
	if p.opts.json {
		return writeJSON(p.cmd, p.views)
	}
	return nil
}

func (p *entityPrinter) out() io.Writer {
	return p.cmd.OutOrStdout()
}
