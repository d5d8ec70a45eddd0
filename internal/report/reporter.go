package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/gridcss"
)

// Options controls issue rendering.
type Options struct {
	// SourceLines prints the offending manifest line with a caret under
	// each issue.
	SourceLines bool
	// CheckNames appends the (check) suffix to each issue line.
	CheckNames bool
	UseColors  bool
}

// Reporter renders issues in file:line:col: message (check) form, the same
// shape golangci-lint prints so editors jump to the right manifest line.
type Reporter struct {
	w    io.Writer
	opts Options
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{w: w, opts: opts}
}

// PrintIssues outputs the issues in the order given; Check already sorts
// them by position.
func (r *Reporter) PrintIssues(issues []gridcss.Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue gridcss.Issue) {
	// Issues without a file, like the truncation notice, have no location
	// to anchor to.
	if issue.Pos.Filename == "" {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, issue.Text, r.opts.UseColors))
		return
	}

	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	checkSuffix := ""
	if r.opts.CheckNames {
		checkSuffix = fmt.Sprintf(" (%s)", issue.FromCheck)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.opts.UseColors),
		issue.Text,
		RenderStyle(StyleGray, checkSuffix, r.opts.UseColors))

	if r.opts.SourceLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := caretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.opts.UseColors))
	}
}

// caretIndicator creates the "^" indicator aligned with the column. Tabs in
// the source prefix are kept as tabs so the caret lands where the terminal
// renders the column.
func caretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the closing count line with the severity breakdown
// and the per-check counts.
func (r *Reporter) PrintSummary(result *gridcss.CheckResult) {
	stats := result.Stats
	total := stats.Errors + stats.Warnings

	fmt.Fprintln(r.w, "")
	if total == 0 {
		fmt.Fprintf(r.w, "%s %s checked, no issues\n",
			RenderStyle(StyleGreen, "ok:", r.opts.UseColors),
			pluralizeCount(stats.GridsChecked, "grid", "grids"))
		return
	}

	fmt.Fprintf(r.w, "%s (%s, %s):\n",
		pluralizeCount(total, "issue", "issues"),
		pluralizeCount(stats.Errors, "error", "errors"),
		pluralizeCount(stats.Warnings, "warning", "warnings"))
	for _, check := range stats.CheckNames() {
		fmt.Fprintf(r.w, "* %s: %d\n", check, stats.ByCheck[check])
	}
}

// pluralizeCount returns count with the singular or plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
