package gridcss

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// CheckConfig holds check configuration. SourceDir, Include, Gutters and
// Layout mean the same as in Config so a check run sees exactly what a
// generate run would.
type CheckConfig struct {
	SourceDir string
	Include   []string
	Gutters   string
	Layout    string
	// MaxIssues caps the reported issue list; 0 means unlimited. Stats
	// always cover the full list.
	MaxIssues int
	Logger    *zap.Logger
}

// CheckResult carries the issues of one check run plus its stats.
type CheckResult struct {
	Issues []Issue
	Stats  CheckStats
}

// HasErrors reports whether any issue is error severity.
func (r *CheckResult) HasErrors() bool { return r.Stats.Errors > 0 }

// HasWarnings reports whether any issue is warning severity.
func (r *CheckResult) HasWarnings() bool { return r.Stats.Warnings > 0 }

// Check validates every scanned manifest and dry-runs compilation, reporting
// problems as issues instead of failing on the first one. Nothing is
// written: degradations that Generate would apply silently come back as
// warnings here.
func Check(config CheckConfig) (*CheckResult, error) {
	log := cfgLogger(config.Logger)

	opts, err := resolveOptions(config.Gutters, config.Layout)
	if err != nil {
		return nil, err
	}

	paths, _, err := ScanManifests(config.SourceDir, config.Include, log)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	stats := CheckStats{ByCheck: make(map[string]int)}
	declared := make(map[string]string) // selector -> file:line of first use

	for _, path := range paths {
		stats.ManifestsScanned++

		m, err := LoadManifest(path)
		if err != nil {
			issues = append(issues, Issue{
				FromCheck: CheckManifest,
				Text:      err.Error(),
				Severity:  SeverityError,
				Pos:       IssuePos{Filename: path, Line: yamlErrorLine(err)},
			})
			continue
		}
		log.Debug("checking manifest", zap.String("path", path), zap.Int("grids", len(m.Grids)))

		for i := range m.Grids {
			g := &m.Grids[i]
			stats.GridsChecked++
			source := sourceLines(m, g.Line())

			broken := false
			for _, p := range g.Problems() {
				check := CheckGrid
				if p.Severity == SeverityError {
					check = CheckManifest
					broken = true
				}
				issues = append(issues, Issue{
					FromCheck:   check,
					Text:        p.Text,
					Severity:    p.Severity,
					SourceLines: source,
					Pos:         IssuePos{Filename: path, Line: p.Line, Column: p.Column},
				})
			}

			if selector := g.ContainerSelector(); selector != "" {
				at := fmt.Sprintf("%s:%d", path, g.Line())
				if first, dup := declared[selector]; dup {
					issues = append(issues, Issue{
						FromCheck:   CheckGrid,
						Text:        fmt.Sprintf(IssueDuplicateSelector, selector, first),
						Severity:    SeverityWarning,
						SourceLines: source,
						Pos:         IssuePos{Filename: path, Line: g.Line(), Column: g.Column()},
					})
				} else {
					declared[selector] = at
				}
			}

			if broken {
				continue
			}
			rs, err := g.Compile(opts)
			if err != nil {
				// Problems already reported whatever Compile would trip on.
				continue
			}
			stats.RulesPlanned += len(rs.Rules)
			for _, d := range rs.Degradations {
				issues = append(issues, Issue{
					FromCheck:   CheckDegradation,
					Text:        d.Detail,
					Severity:    SeverityWarning,
					SourceLines: source,
					Pos:         IssuePos{Filename: path, Line: g.Line(), Column: g.Column()},
				})
			}
		}
	}

	sortIssues(issues)
	stats.tally(issues)
	issues = capIssues(issues, config.MaxIssues)

	return &CheckResult{Issues: issues, Stats: stats}, nil
}

func sourceLines(m *Manifest, line int) []string {
	if src := m.SourceLine(line); src != "" {
		return []string{src}
	}
	return nil
}

// sortIssues orders by file, then line, then column. The sort is stable so
// issues on the same grid keep their discovery order.
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// capIssues truncates the list to max entries and appends an info notice
// naming how many were hidden. A max of 0 disables the cap.
func capIssues(issues []Issue, max int) []Issue {
	if max <= 0 || len(issues) <= max {
		return issues
	}
	hidden := len(issues) - max
	capped := issues[:max:max]
	return append(capped, Issue{
		FromCheck: CheckTruncation,
		Text:      fmt.Sprintf(IssueTruncated, hidden),
		Severity:  SeverityInfo,
	})
}
