package cli

import (
	"fmt"
	"io"

	"github.com/morozRed/mdlinkcheck/internal/checker"
	"github.com/morozRed/mdlinkcheck/internal/docindex"
	"github.com/morozRed/mdlinkcheck/internal/report"
)

// PrintRunSummary writes findings followed by the counters block, or the JSON
// summary when asJSON is set.
func PrintRunSummary(w io.Writer, result checker.Result, asJSON bool) error {
	if asJSON {
		documents := 0
		if result.Index != nil {
			documents = result.Index.Len()
		}
		summary := report.NewRunSummary(result.Root, documents, result.Totals, result.Duration.Milliseconds())
		return report.WriteJSON(w, summary)
	}

	if err := report.WriteFindings(w, result.Totals.Findings); err != nil {
		return err
	}
	return report.WriteSummary(w, result.Totals.Stats)
}

// ReportIssues lists pages that could not be fully read, one line per issue.
// This is the only place per-file issues are shown.
func ReportIssues(w io.Writer, issues []docindex.Issue) {
	if len(issues) == 0 {
		return
	}
	for _, issue := range issues {
		fmt.Fprintf(w, "[%s] %s: %s\n", issue.Severity, issue.File, issue.Message)
	}
	fmt.Fprintf(w, "pages with problems: %d\n", len(issues))
}
