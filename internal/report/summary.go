package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/gridcss"
)

// Summary renders the statistics block used by the summary output format:
// coverage and severity counters without the individual issues.
type Summary struct {
	w         io.Writer
	useColors bool
}

// NewSummary creates a summary renderer writing to w.
func NewSummary(w io.Writer, useColors bool) *Summary {
	return &Summary{w: w, useColors: useColors}
}

// PrintStats outputs the coverage and severity counters.
func (s *Summary) PrintStats(result *gridcss.CheckResult) {
	stats := result.Stats

	fmt.Fprintln(s.w, "")
	fmt.Fprintln(s.w, RenderStyle(StyleCyan, "Check Summary", s.useColors))
	fmt.Fprintln(s.w, "-------------")
	fmt.Fprintf(s.w, "Manifests Scanned: %d\n", stats.ManifestsScanned)
	fmt.Fprintf(s.w, "Grids Checked:     %d\n", stats.GridsChecked)
	fmt.Fprintf(s.w, "Rules Planned:     %d\n", stats.RulesPlanned)
	fmt.Fprintf(s.w, "Errors:            %s\n", s.count(stats.Errors, StyleRed))
	fmt.Fprintf(s.w, "Warnings:          %s\n", s.count(stats.Warnings, StyleYellow))
}

// PrintChecks outputs the per-check breakdown, skipped when nothing fired.
func (s *Summary) PrintChecks(result *gridcss.CheckResult) {
	stats := result.Stats
	if len(stats.ByCheck) == 0 {
		return
	}

	fmt.Fprintln(s.w, "")
	fmt.Fprintln(s.w, RenderStyle(StyleCyan, "By Check", s.useColors))
	fmt.Fprintln(s.w, "--------")
	for _, check := range stats.CheckNames() {
		fmt.Fprintf(s.w, "%s: %d\n", check, stats.ByCheck[check])
	}
}

// count styles a nonzero counter so problems stand out in the block.
func (s *Summary) count(n int, style lipgloss.Style) string {
	text := fmt.Sprintf("%d", n)
	if n == 0 {
		return text
	}
	return RenderStyle(style, text, s.useColors)
}
