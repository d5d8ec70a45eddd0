package gridcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the machine-readable check report. The schema is stable so
// CI pipelines can depend on it; additions are allowed, renames are not.
type JSONOutput struct {
	Version   string      `json:"version"`
	CheckedAt string      `json:"checked_at"`
	Issues    []JSONIssue `json:"issues"`
	Stats     CheckStats  `json:"stats"`
}

// JSONIssue is one issue in the export schema.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check"`
	Source   string `json:"source,omitempty"`
}

// jsonSchemaVersion bumps when the export schema changes shape.
const jsonSchemaVersion = "1.0"

// WriteJSON writes the check result as indented JSON.
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *CheckResult) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Check:    issue.FromCheck,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   jsonSchemaVersion,
		CheckedAt: time.Now().Format(time.RFC3339),
		Issues:    issues,
		Stats:     result.Stats,
	}
}
