package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"imdbooo/internal/crawl"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var url string
	var file string
	var withoutCast bool
	var withoutRoles bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Cache every title and person linked from a page",
		Long: "Cache every title and person linked from a page, then follow one hop:\n" +
			"titles pull in their cast and people pull in their filmography.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := crawl.Source{URL: strings.TrimSpace(url)}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read source file: %w", err)
				}
				source = crawl.Source{Raw: string(data)}
			}
			opts := crawl.IndexOptions{
				ExpandCast:  !withoutCast,
				ExpandRoles: !withoutRoles,
			}

			return ctx.withSession(cmd, func(s *session) error {
				printer := newEntityPrinter(cmd, ctx.output)
				for entity := range s.coordinator.Index(cmd.Context(), source, opts) {
					printer.print(entity)
				}
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				return printer.flush()
			})
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", "", "Page to fetch and index")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Saved page to index")
	cmd.Flags().BoolVar(&withoutCast, "without-cast", false, "Do not fetch the cast of indexed titles")
	cmd.Flags().BoolVar(&withoutRoles, "without-roles", false, "Do not fetch the filmography of indexed people")
	cmd.MarkFlagsMutuallyExclusive("url", "file")
	cmd.MarkFlagsOneRequired("url", "file")
	return cmd
}
