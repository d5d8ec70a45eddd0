package gridcss

// roundingSlack is subtracted from computed percentage widths so rounded
// values cannot overflow the row and wrap (0.1 of the gutter's unit).
const roundingSlack = 0.1

// ColumnWidth computes the emitted width (or flex basis) for one column.
// width is the requested span, columns the total column count (at least 1),
// gutter the spacing between adjacent columns (non-negative).
//
// A percentage width with a positive gutter yields the deferred expression
// width − gutter·(1 − width/100) − slack. The percentage and length parts
// stay symbolic until render time; addends sharing a unit fold, so a 25%
// width with a 20px gutter renders calc(25% - 15.1px). A zero gutter leaves
// percentages untouched. Fixed widths are valid flex bases and pass through
// under LayoutFlexbox; under LayoutFloat they degrade to auto, since floats
// cannot size non-percentage columns.
func ColumnWidth(width Dimension, columns int, gutter Dimension, mode LayoutMode) Dimension {
	switch {
	case width.IsPercent() && gutter.Positive():
		slack := Length(roundingSlack, slackUnit(gutter))
		return width.Sub(gutter.Scale(1 - width.Value()/100)).Sub(slack)
	case width.IsPercent():
		return width
	case mode == LayoutFlexbox:
		return width
	default:
		return Auto()
	}
}

// slackUnit picks the unit for the rounding slack: the gutter's own unit,
// falling back to % for unitless gutters so the slack folds into the
// percentage term.
func slackUnit(gutter Dimension) string {
	if u := gutter.Unit(); u != "" {
		return u
	}
	return "%"
}

// AllPercentages reports whether every span is a percentage quantity. An
// empty list is vacuously true.
func AllPercentages(spans []Dimension) bool {
	for _, s := range spans {
		if !s.IsPercent() {
			return false
		}
	}
	return true
}
