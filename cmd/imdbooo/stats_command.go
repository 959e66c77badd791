package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"imdbooo/internal/store"
)

type statsView struct {
	Movies    int         `json:"movies"`
	TVShows   int         `json:"tv_shows"`
	People    int         `json:"people"`
	Genres    int         `json:"genres"`
	CastLinks int         `json:"cast_links"`
	Searches  int         `json:"searches"`
	Total     int         `json:"total"`
	Schema    string      `json:"schema"`
	ByGenre   []genreView `json:"by_genre,omitempty"`
	Queries   []string    `json:"queries,omitempty"`
}

type genreView struct {
	Name   string `json:"name"`
	Titles int    `json:"titles"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var withGenres bool
	var withQueries bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show what the cache holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				view, err := loadStats(cmd, st, withGenres, withQueries)
				if err != nil {
					return err
				}
				if ctx.output.json {
					return writeJSON(cmd, view)
				}
				printStats(cmd, view)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withGenres, "genres", false, "Include per-genre title counts")
	cmd.Flags().BoolVar(&withQueries, "queries", false, "List cached search queries, newest first")
	return cmd
}

func loadStats(cmd *cobra.Command, st *store.Store, withGenres, withQueries bool) (statsView, error) {
	stats, err := st.Stats(cmd.Context())
	if err != nil {
		return statsView{}, fmt.Errorf("load stats: %w", err)
	}
	schema, err := st.SchemaVersion(cmd.Context())
	if err != nil {
		return statsView{}, fmt.Errorf("load schema version: %w", err)
	}
	view := statsView{
		Movies:    stats.Movies,
		TVShows:   stats.TVShows,
		People:    stats.People,
		Genres:    stats.Genres,
		CastLinks: stats.CastLinks,
		Searches:  stats.Searches,
		Total:     stats.Total(),
		Schema:    schema,
	}
	if withGenres {
		usage, err := st.Genres(cmd.Context())
		if err != nil {
			return statsView{}, fmt.Errorf("load genres: %w", err)
		}
		for _, u := range usage {
			view.ByGenre = append(view.ByGenre, genreView{Name: u.Genre.Name, Titles: u.Titles})
		}
	}
	if withQueries {
		queries, err := st.SearchQueries(cmd.Context())
		if err != nil {
			return statsView{}, fmt.Errorf("load search queries: %w", err)
		}
		view.Queries = queries
	}
	return view, nil
}

func printStats(cmd *cobra.Command, view statsView) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Movies", strconv.Itoa(view.Movies)},
		{"TV shows", strconv.Itoa(view.TVShows)},
		{"People", strconv.Itoa(view.People)},
		{"Genres", strconv.Itoa(view.Genres)},
		{"Cast links", strconv.Itoa(view.CastLinks)},
		{"Searches", strconv.Itoa(view.Searches)},
		{"Total entities", strconv.Itoa(view.Total)},
	}
	fmt.Fprintln(out, renderTable("Cache", []string{"Record", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintf(out, "Schema: %s\n", view.Schema)

	if len(view.ByGenre) > 0 {
		genreRows := make([][]string, 0, len(view.ByGenre))
		for _, g := range view.ByGenre {
			genreRows = append(genreRows, []string{g.Name, strconv.Itoa(g.Titles)})
		}
		fmt.Fprintln(out, renderTable("Genres", []string{"Genre", "Titles"}, genreRows, []columnAlignment{alignLeft, alignRight}))
	}
	if len(view.Queries) > 0 {
		queryRows := make([][]string, 0, len(view.Queries))
		for _, q := range view.Queries {
			queryRows = append(queryRows, []string{q})
		}
		fmt.Fprintln(out, renderTable("Searches", []string{"Query"}, queryRows, nil))
	}
}
