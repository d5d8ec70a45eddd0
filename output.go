package gridcss

import (
	"fmt"
	"strings"
)

// OutputFormat selects how check results are rendered.
type OutputFormat string

const (
	// OutputIssues lists issues in file:line:col format, golangci-lint
	// style. The default: clean, fast, consistent everywhere.
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints run statistics without individual issues.
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports the stable machine-readable schema, see WriteJSON.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format name from a flag or configuration
// value. Empty selects the default issues format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "issues":
		return OutputIssues, nil
	case "summary":
		return OutputSummary, nil
	case "json":
		return OutputJSON, nil
	}
	return OutputIssues, fmt.Errorf("unknown output format %q (want issues, summary or json)", s)
}
