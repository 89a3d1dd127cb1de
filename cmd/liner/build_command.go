package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"liner/internal/config"
	"liner/internal/export"
	"liner/internal/ingest"
	"liner/internal/report"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var sourceFlag string
	var outputFlag string
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the catalog and export the content tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyOverrides(ctx, modeFlag, sourceFlag, outputFlag, workersFlag); err != nil {
				return err
			}
			return ctx.runBuild(cmd.Context(), func(buildCtx context.Context, env buildEnv, res *ingest.Result) error {
				exporter := export.New(env.cfg.Paths.OutputDir, env.logger)
				if err := exporter.Export(buildCtx, res.Catalog, res.Index); err != nil {
					return err
				}
				report.Write(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "", "Build mode (strict or lenient)")
	cmd.Flags().StringVar(&sourceFlag, "source", "", "Source record directory")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Output content directory")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Parse worker count (0 uses all CPUs)")
	return cmd
}

// applyOverrides folds command-line flags into the loaded configuration and
// revalidates it.
func applyOverrides(ctx *commandContext, mode, source, output string, workers int) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if mode = strings.TrimSpace(mode); mode != "" {
		cfg.Build.Mode = strings.ToLower(mode)
	}
	if source = strings.TrimSpace(source); source != "" {
		expanded, err := config.ExpandPath(source)
		if err != nil {
			return fmt.Errorf("resolve source path: %w", err)
		}
		cfg.Paths.SourceDir = expanded
	}
	if output = strings.TrimSpace(output); output != "" {
		expanded, err := config.ExpandPath(output)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		cfg.Paths.OutputDir = expanded
	}
	if workers > 0 {
		cfg.Build.Workers = workers
	}
	return cfg.Validate()
}
