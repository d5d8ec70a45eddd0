package gridcss

import "fmt"

// DegradationKind classifies a silent layout fallback.
type DegradationKind uint8

const (
	// DegradationModeUpgraded records a float request upgraded to flexbox
	// because the spans mix percentage and fixed units.
	DegradationModeUpgraded DegradationKind = iota
	// DegradationColumnsClamped records a gallery column count below one
	// clamped to a single column.
	DegradationColumnsClamped
)

// String returns the short name used in reports.
func (k DegradationKind) String() string {
	switch k {
	case DegradationModeUpgraded:
		return "mode-upgraded"
	case DegradationColumnsClamped:
		return "columns-clamped"
	}
	return "unknown"
}

// Degradation records a fallback applied silently while emitting rules.
// Rules are still emitted; degradations are never errors.
type Degradation struct {
	Kind     DegradationKind `json:"kind"`
	Selector string          `json:"selector"` // container selector of the affected grid
	Detail   string          `json:"detail"`
}

// RuleSet is the output of a single emission: the rules in emission order
// plus any degradations recorded while producing them.
type RuleSet struct {
	Rules        []Rule
	Degradations []Degradation
}

func (rs *RuleSet) add(selector string, decls ...Declaration) {
	rs.Rules = append(rs.Rules, Rule{Selector: selector, Declarations: decls})
}

func (rs *RuleSet) degrade(kind DegradationKind, selector, format string, args ...any) {
	rs.Degradations = append(rs.Degradations, Degradation{
		Kind:     kind,
		Selector: selector,
		Detail:   fmt.Sprintf(format, args...),
	})
}
