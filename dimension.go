package gridcss

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// DimensionKind tags the variants of a Dimension.
type DimensionKind uint8

const (
	// KindQuantity is a plain magnitude with a unit: 25%, 1.5rem, 0.
	KindQuantity DimensionKind = iota
	// KindAuto is the CSS keyword auto.
	KindAuto
	// KindExpr is an unevaluated sum of quantities with differing units,
	// rendered as a calc() expression.
	KindExpr
)

// term is one addend of a deferred calculation.
type term struct {
	value float64
	unit  string
}

// Dimension is a CSS magnitude: a quantity (percentage, absolute length or
// unitless number), the keyword auto, or a deferred calc() expression built
// from quantities whose units cannot be combined until render time. The zero
// value is the quantity 0. Dimensions are immutable; arithmetic returns new
// values.
type Dimension struct {
	kind  DimensionKind
	value float64
	unit  string
	terms []term // KindExpr only, two or more addends in insertion order
}

// Percent returns a percentage quantity.
func Percent(v float64) Dimension {
	return Dimension{kind: KindQuantity, value: v, unit: "%"}
}

// Length returns a quantity with the given unit, e.g. Length(1.5, "rem").
func Length(v float64, unit string) Dimension {
	return Dimension{kind: KindQuantity, value: v, unit: strings.ToLower(unit)}
}

// Auto returns the keyword auto.
func Auto() Dimension {
	return Dimension{kind: KindAuto}
}

// Kind reports which variant d holds.
func (d Dimension) Kind() DimensionKind { return d.kind }

// Value returns the magnitude of a quantity; zero for auto and expressions.
func (d Dimension) Value() float64 { return d.value }

// Unit returns the unit of a quantity ("%" for percentages, "" for unitless
// numbers); empty for auto and expressions.
func (d Dimension) Unit() string { return d.unit }

// IsPercent reports whether d is a percentage quantity.
func (d Dimension) IsPercent() bool {
	return d.kind == KindQuantity && d.unit == "%"
}

// IsZero reports whether d is a zero quantity of any unit.
func (d Dimension) IsZero() bool {
	return d.kind == KindQuantity && d.value == 0
}

// Positive reports whether d is a quantity greater than zero.
func (d Dimension) Positive() bool {
	return d.kind == KindQuantity && d.value > 0
}

// asTerms flattens d into addends. Auto has no term representation.
func (d Dimension) asTerms() []term {
	switch d.kind {
	case KindQuantity:
		return []term{{d.value, d.unit}}
	case KindExpr:
		return d.terms
	default:
		return nil
	}
}

// fromTerms folds addends sharing a unit (first-seen order), drops the ones
// that cancel to zero, and collapses to a plain quantity when a single unit
// remains. Folding never changes the render-time value; only terms with
// incompatible units stay deferred.
func fromTerms(terms []term) Dimension {
	folded := make([]term, 0, len(terms))
	for _, t := range terms {
		merged := false
		for i := range folded {
			if folded[i].unit == t.unit {
				folded[i].value += t.value
				merged = true
				break
			}
		}
		if !merged {
			folded = append(folded, t)
		}
	}
	kept := folded[:0]
	for _, t := range folded {
		if t.value != 0 {
			kept = append(kept, t)
		}
	}
	switch len(kept) {
	case 0:
		return Dimension{}
	case 1:
		return Dimension{kind: KindQuantity, value: kept[0].value, unit: kept[0].unit}
	}
	return Dimension{kind: KindExpr, terms: kept}
}

// Add returns d + o. Auto is absorbing: adding to or from auto yields auto.
func (d Dimension) Add(o Dimension) Dimension {
	if d.kind == KindAuto || o.kind == KindAuto {
		return Auto()
	}
	a, b := d.asTerms(), o.asTerms()
	sum := make([]term, 0, len(a)+len(b))
	sum = append(sum, a...)
	sum = append(sum, b...)
	return fromTerms(sum)
}

// Sub returns d − o.
func (d Dimension) Sub(o Dimension) Dimension {
	return d.Add(o.Neg())
}

// Neg returns −d.
func (d Dimension) Neg() Dimension {
	return d.Scale(-1)
}

// Scale returns d·f.
func (d Dimension) Scale(f float64) Dimension {
	switch d.kind {
	case KindAuto:
		return Auto()
	case KindQuantity:
		return Dimension{kind: KindQuantity, value: d.value * f, unit: d.unit}
	}
	scaled := make([]term, len(d.terms))
	for i, t := range d.terms {
		scaled[i] = term{t.value * f, t.unit}
	}
	return fromTerms(scaled)
}

// String renders d as CSS text: "25%", "1.5rem", "auto", "0" or
// "calc(25% - 15.1px)".
func (d Dimension) String() string {
	switch d.kind {
	case KindAuto:
		return "auto"
	case KindQuantity:
		if d.value == 0 {
			return "0"
		}
		return formatNumber(d.value) + d.unit
	}
	var b strings.Builder
	b.WriteString("calc(")
	for i, t := range d.terms {
		v := t.value
		switch {
		case i == 0:
			if v < 0 {
				b.WriteByte('-')
				v = -v
			}
		case v < 0:
			b.WriteString(" - ")
			v = -v
		default:
			b.WriteString(" + ")
		}
		b.WriteString(formatNumber(v))
		b.WriteString(t.unit)
	}
	b.WriteByte(')')
	return b.String()
}

// formatNumber renders v with at most five decimal places, trailing zeros
// trimmed, matching stylesheet-compiler output conventions.
func formatNumber(v float64) string {
	r := math.Round(v*1e5) / 1e5
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ParseDimension parses a single CSS dimension token: a percentage ("25%"),
// a dimension ("1.5rem"), a plain number ("0") or the keyword auto. Anything
// else, including trailing input after the token, is an error.
func ParseDimension(s string) (Dimension, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Dimension{}, fmt.Errorf("empty dimension")
	}

	lexer := css.NewLexer(parse.NewInputString(trimmed))
	tt, data := lexer.Next()

	var d Dimension
	switch tt {
	case css.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		d = Percent(v)
	case css.DimensionToken:
		value, unit := splitDimensionToken(string(data))
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
		}
		d = Length(v, unit)
	case css.NumberToken:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		d = Dimension{kind: KindQuantity, value: v}
	case css.IdentToken:
		if !strings.EqualFold(string(data), "auto") {
			return Dimension{}, fmt.Errorf("invalid dimension %q", s)
		}
		d = Auto()
	default:
		return Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}

	if tt, _ := lexer.Next(); tt != css.ErrorToken || lexer.Err() != io.EOF {
		return Dimension{}, fmt.Errorf("invalid dimension %q: trailing input", s)
	}
	return d, nil
}

// splitDimensionToken separates the numeric prefix of a dimension token from
// its unit suffix. An e introduces an exponent only when digits follow;
// otherwise it starts the unit, as in "2em".
func splitDimensionToken(tok string) (value, unit string) {
	i := 0
	for i < len(tok) {
		c := tok[i]
		if c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9') {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && i+1 < len(tok) {
			next := tok[i+1]
			if next == '+' || next == '-' {
				if i+2 < len(tok) && tok[i+2] >= '0' && tok[i+2] <= '9' {
					i += 3
					continue
				}
			} else if next >= '0' && next <= '9' {
				i += 2
				continue
			}
		}
		break
	}
	return tok[:i], strings.ToLower(tok[i:])
}
