package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"imdbooo/internal/model"
	"imdbooo/internal/store"
)

type showView struct {
	Entity entityView   `json:"entity"`
	Linked []entityView `json:"linked"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a cached title or person and its links",
		Long: "Show a cached title or person. Titles list their cast, people list\n" +
			"the titles they appear in. Nothing is fetched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return ctx.withStore(func(st *store.Store) error {
				entity, err := st.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("load %s: %w", id, err)
				}
				if entity == nil {
					return fmt.Errorf("%s is not cached; run `imdbooo index` first", id)
				}

				var linked []model.Entity
				switch entity.Kind {
				case model.KindMovie, model.KindTVShow:
					linked, err = st.CastOf(cmd.Context(), id)
				case model.KindPerson:
					linked, err = st.FilmographyOf(cmd.Context(), id)
				}
				if err != nil {
					return fmt.Errorf("load links of %s: %w", id, err)
				}

				if ctx.output.json {
					view := showView{Entity: newEntityView(*entity), Linked: make([]entityView, 0, len(linked))}
					for _, l := range linked {
						view.Linked = append(view.Linked, newEntityView(l))
					}
					return writeJSON(cmd, view)
				}
				printShow(cmd.OutOrStdout(), ctx.output, *entity, linked)
				return nil
			})
		},
	}
}

func printShow(out io.Writer, opts *outputOptions, entity model.Entity, linked []model.Entity) {
	fmt.Fprintln(out, renderFields(entity.Kind.Label(), entityFields(entity)))

	heading := "Cast"
	if entity.Kind == model.KindPerson {
		heading = "Filmography"
	}
	heading = fmt.Sprintf("%s (%d)", heading, len(linked))
	if shouldColorize(out) {
		heading = text.Colors{text.Bold}.Sprint(heading)
	}
	fmt.Fprintln(out, heading)
	for _, l := range linked {
		fmt.Fprintf(out, "  %s\n", opts.formatEntity(l))
	}
}

func entityFields(entity model.Entity) [][2]string {
	switch entity.Kind {
	case model.KindMovie, model.KindTVShow:
		t := entity.Title
		fields := [][2]string{
			{"ID", t.ID},
			{"Title", t.Name},
			{"Year", yearText(t.ReleaseYear)},
			{"Rating", ratingText(t.Rating)},
			{"Genres", orNA(strings.Join(t.GenreNames(), ", "))},
		}
		if entity.Kind == model.KindMovie {
			fields = append(fields, [2]string{"Runtime", orNA(t.Runtime)})
		}
		return append(fields,
			[2]string{"Plot", orNA(t.Plot)},
			[2]string{"Poster", orNA(t.Poster)},
		)
	case model.KindPerson:
		p := entity.Person
		birth := notAvailable
		if p.BirthDate != nil {
			birth = p.BirthDate.String()
			if p.BirthDate.Approximate {
				birth += " (approximate)"
			}
		}
		return [][2]string{
			{"ID", p.ID},
			{"First name", p.FirstName},
			{"Middle name", orNA(p.MiddleName)},
			{"Last name", orNA(p.LastName)},
			{"Born", birth},
		}
	default:
		return [][2]string{{"ID", entity.ID()}}
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
