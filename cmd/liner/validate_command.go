package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liner/internal/ingest"
	"liner/internal/report"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var sourceFlag string
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check source records without exporting",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyOverrides(ctx, modeFlag, sourceFlag, "", workersFlag); err != nil {
				return err
			}
			return ctx.runBuild(cmd.Context(), func(_ context.Context, _ buildEnv, res *ingest.Result) error {
				report.Write(cmd.OutOrStdout(), res)
				if n := len(res.Report.Skipped); n > 0 {
					return fmt.Errorf("%d of %d records failed validation", n, n+res.Report.Parsed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "", "Build mode (strict or lenient)")
	cmd.Flags().StringVar(&sourceFlag, "source", "", "Source record directory")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Parse worker count (0 uses all CPUs)")
	return cmd
}
