package gridcss

import "sort"

// CheckStats tallies what a check run covered and what it found. The JSON
// tags are the stable names of the machine-readable schema, see WriteJSON.
type CheckStats struct {
	ManifestsScanned int            `json:"manifests_scanned"`
	GridsChecked     int            `json:"grids_checked"`
	RulesPlanned     int            `json:"rules_planned"`
	Errors           int            `json:"errors"`
	Warnings         int            `json:"warnings"`
	ByCheck          map[string]int `json:"by_check"`
}

// tally folds issues into the severity and per-check counters. It runs over
// the full issue list before any --max-issues cap, so the stats describe the
// run even when the list is truncated.
func (s *CheckStats) tally(issues []Issue) {
	if s.ByCheck == nil {
		s.ByCheck = make(map[string]int)
	}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		}
		s.ByCheck[issue.FromCheck]++
	}
}

// CheckNames returns the check names present in the tallies, sorted for
// deterministic rendering.
func (s CheckStats) CheckNames() []string {
	names := make([]string, 0, len(s.ByCheck))
	for name := range s.ByCheck {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
