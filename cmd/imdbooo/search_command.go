package main

import (
	"errors"

	"github.com/spf13/cobra"

	"imdbooo/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search titles and people, reusing cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session) error {
				results, err := s.search.Search(cmd.Context(), query)
				if errors.Is(err, search.ErrEmptyQuery) {
					return errors.New("search query was empty after encoding it")
				}
				if err != nil {
					return err
				}
				printer := newEntityPrinter(cmd, ctx.output)
				for entity := range results {
					printer.print(entity)
				}
				return printer.flush()
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search text")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}
