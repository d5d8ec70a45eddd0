package gridcss

import (
	"fmt"
	"strconv"
	"strings"
)

// Nth is a structural-selector predicate matching child indexes of the form
// A·n + B for n ≥ 0, the coefficient form of CSS :nth-child() arguments.
// Predicates are computed from column counts rather than written as literal
// pattern strings.
type Nth struct {
	A int
	B int
}

// String renders the predicate in an+b notation: {3,1} → "3n+1",
// {3,0} → "3n", {-1,3} → "-n+3", {0,2} → "2".
func (p Nth) String() string {
	if p.A == 0 {
		return strconv.Itoa(p.B)
	}
	var b strings.Builder
	switch p.A {
	case 1:
		b.WriteByte('n')
	case -1:
		b.WriteString("-n")
	default:
		b.WriteString(strconv.Itoa(p.A))
		b.WriteByte('n')
	}
	if p.B > 0 {
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(p.B))
	} else if p.B < 0 {
		b.WriteString(strconv.Itoa(p.B))
	}
	return b.String()
}

// rowStart matches the first cell of every row in a grid columns wide
// (positions 1, columns+1, 2·columns+1, ...).
func rowStart(columns int) Nth { return Nth{A: columns, B: 1} }

// rowEnd matches the last cell of every row (positions columns, 2·columns, ...).
func rowEnd(columns int) Nth { return Nth{A: columns} }

// lastCells matches the final count children, counted from the end.
func lastCells(count int) Nth { return Nth{A: -1, B: count} }

// Child-selector builders. All emitted rules target immediate children of
// the grid container.

func children(selector string) string {
	return selector + " > *"
}

func childAt(selector string, pos int) string {
	return fmt.Sprintf("%s > :nth-child(%d)", selector, pos)
}

func nthChild(selector string, p Nth) string {
	return fmt.Sprintf("%s > :nth-child(%s)", selector, p)
}

func nthLastChild(selector string, p Nth) string {
	return fmt.Sprintf("%s > :nth-last-child(%s)", selector, p)
}

func lastChild(selector string) string {
	return selector + " > :last-child"
}

func pseudoPair(selector string) string {
	return fmt.Sprintf("%s::before, %s::after", selector, selector)
}

func pseudoAfter(selector string) string {
	return selector + "::after"
}
