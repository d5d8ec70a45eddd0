package gridcss

// Issue represents a single problem found by the check pipeline, in
// golangci-lint format so editor and CI integrations can reuse their Go
// tooling parsers.
type Issue struct {
	FromCheck   string   `json:"FromCheck"`   // "manifest", "grid", "degradation"
	Text        string   `json:"Text"`        // "grid declares no layout operation ..."
	Severity    string   `json:"Severity"`    // "error", "warning", "info"
	SourceLines []string `json:"SourceLines"` // Manifest lines the issue points at
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/article.grid.yaml"
	Line     int    `json:"Line"`     // 7
	Column   int    `json:"Column"`   // 5 (1-based, start of the grid mapping)
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Check names attached to issues.
const (
	// CheckManifest covers load and validation problems that would abort
	// generation.
	CheckManifest = "manifest"
	// CheckGrid covers declarations that render but rarely mean what the
	// author wrote.
	CheckGrid = "grid"
	// CheckDegradation covers layout fallbacks generate would apply
	// silently.
	CheckDegradation = "degradation"
	// CheckTruncation marks the notice appended when --max-issues capped
	// the list.
	CheckTruncation = "max-issues"
)

// Issue message formats.
const (
	IssueGridNoLayout      = "grid declares no layout operation (want one of row, order, gallery, equal)"
	IssueGridManyLayouts   = "grid declares %s (want exactly one layout operation)"
	IssueGridAnonymous     = "grid has neither selector nor name"
	IssueBadSpan           = "row span %d: %v"
	IssueBadGutter         = "gutter: %v"
	IssueBadLayout         = "layout: %v"
	IssueOrderNeverMatches = "order index %d can never match a child position"
	IssueNegativeGutter    = "gutter %s is negative and collapses to no spacing"
	IssueNoUnit            = "%s %q has no unit"
	IssueDuplicateSelector = "selector %q already declared by the grid at %s"
	IssueTruncated         = "%d more issues not shown (use --max-issues=0 to see all)"
)
