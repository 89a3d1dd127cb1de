package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liner/internal/ingest"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var prefix bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Query the search index built from the source records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runBuild(cmd.Context(), func(_ context.Context, _ buildEnv, res *ingest.Result) error {
				var urls []string
				if prefix {
					matches, err := res.Index.PrefixSearch(args[0])
					if err != nil {
						return err
					}
					urls = matches
				} else {
					urls = res.Index.Lookup(args[0])
				}

				out := cmd.OutOrStdout()
				if len(urls) == 0 {
					fmt.Fprintln(out, "no matches")
					return nil
				}
				for _, url := range urls {
					trk, err := res.Catalog.Get(url)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\t%s - %s (%s, %d)\n", url, trk.Artist, trk.Title, trk.Album, trk.Year)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&prefix, "prefix", false, "Match tokens by prefix instead of exactly")
	return cmd
}
