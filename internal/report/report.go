package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"liner/internal/ingest"
)

// Write renders the build summary to w.
func Write(w io.Writer, res *ingest.Result) {
	colorize := shouldColorize(w)
	rep := res.Report

	lines := renderSectionHeader("Build Summary", colorize)
	lines = append(lines,
		renderStatusLine("Build", statusInfo, rep.BuildID, colorize),
		renderStatusLine("Source", statusInfo, rep.Source, colorize),
		renderStatusLine("Mode", statusInfo, rep.Mode, colorize),
	)

	kind := statusOK
	outcome := "catalog built"
	if len(rep.Skipped) > 0 || len(rep.Warnings) > 0 {
		kind = statusWarn
		outcome = fmt.Sprintf("catalog built with %d skipped, %d warnings",
			len(rep.Skipped), len(rep.Warnings))
	}
	lines = append(lines, renderStatusLine("Result", kind, outcome, colorize), "")

	lines = append(lines, renderCountTable([][]string{
		{"Tracks", strconv.Itoa(res.Catalog.Len())},
		{"Search tokens", strconv.Itoa(res.Index.TokenCount())},
		{"Records parsed", strconv.Itoa(rep.Parsed)},
		{"Records skipped", strconv.Itoa(len(rep.Skipped))},
		{"Warnings", strconv.Itoa(len(rep.Warnings))},
		{"Elapsed", rep.Elapsed.Round(time.Millisecond).String()},
	}))

	if len(rep.Skipped) > 0 {
		lines = append(lines, "")
		lines = append(lines, renderSectionHeader("Skipped Records", colorize)...)
		rows := make([][]string, 0, len(rep.Skipped))
		for _, issue := range rep.Skipped {
			rows = append(rows, []string{issue.Record, issue.Err.Error()})
		}
		lines = append(lines, renderIssueTable([]string{"Record", "Reason"}, rows))
	}

	if len(rep.Warnings) > 0 {
		lines = append(lines, "")
		lines = append(lines, renderSectionHeader("Derived Field Warnings", colorize)...)
		rows := make([][]string, 0, len(rep.Warnings))
		for _, warning := range rep.Warnings {
			rows = append(rows, []string{warning.Record, warning.Field, warning.Stored, warning.Recomputed})
		}
		lines = append(lines, renderIssueTable([]string{"Record", "Field", "Stored", "Recomputed"}, rows))
	}

	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
