package gridcss

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Rule is a selector with an ordered declaration list. Order is preserved on
// output: later rules and declarations override earlier ones under the
// cascade, which the emitters rely on.
type Rule struct {
	Selector     string        `json:"selector"`
	Declarations []Declaration `json:"declarations"`
}

// Stylesheet is an ordered rule collection ready for serialization.
type Stylesheet struct {
	Rules []Rule
}

// Append adds rules to the end of the sheet.
func (s *Stylesheet) Append(rules ...Rule) {
	s.Rules = append(s.Rules, rules...)
}

// WriteTo renders the sheet as CSS text, one rule block per rule with a
// blank line between blocks.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, rule)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the sheet to a string.
func (s *Stylesheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

func writeRule(w io.Writer, rule Rule) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err := fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, "}\n")
	total += int64(n)
	return total, err
}
