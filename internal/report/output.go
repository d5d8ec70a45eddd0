package report

import (
	"io"

	"github.com/yacobolo/gridcss"
)

// Write renders a check result in the requested format.
func Write(w io.Writer, result *gridcss.CheckResult, format gridcss.OutputFormat, opts Options) error {
	switch format {
	case gridcss.OutputSummary:
		summary := NewSummary(w, opts.UseColors)
		summary.PrintStats(result)
		summary.PrintChecks(result)
	case gridcss.OutputJSON:
		return gridcss.WriteJSON(w, result)
	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}
