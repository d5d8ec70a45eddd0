package gridcss

// Row emits the rules for a single row whose children take the given spans,
// in span order (child 1 gets spans[0]). A float request over spans that mix
// percentage and fixed units is upgraded to flexbox; the emitted rules carry
// no trace of the upgrade, but the RuleSet records it.
func Row(selector string, spans []Dimension, opts Options) *RuleSet {
	rs := &RuleSet{}
	mode := opts.Layout
	if mode == LayoutFloat && !AllPercentages(spans) {
		rs.degrade(DegradationModeUpgraded, selector,
			"row mixes percentage and fixed spans; float layout upgraded to flexbox")
		mode = LayoutFlexbox
	}
	gutter := opts.Gutter
	spacing := gutter.Positive()

	if mode == LayoutFlexbox {
		rs.add(selector, Declaration{"display", "flex"})
	} else {
		// Contain the floated children inside the row's height.
		rs.add(pseudoPair(selector),
			Declaration{"content", `""`},
			Declaration{"display", "table"},
		)
		rs.add(pseudoAfter(selector), Declaration{"clear", "both"})
	}

	for i, span := range spans {
		pos, last := i+1, i == len(spans)-1
		decls := make([]Declaration, 0, 4)
		if mode == LayoutFlexbox {
			grow := "0"
			if span.IsPercent() {
				grow = "1"
			}
			decls = append(decls,
				Declaration{"flex-grow", grow},
				Declaration{"flex-shrink", grow},
				Declaration{"flex-basis", ColumnWidth(span, len(spans), gutter, mode).String()},
			)
		} else {
			side := "left"
			if last && len(spans) > 1 {
				side = "right"
			}
			decls = append(decls,
				Declaration{"float", side},
				Declaration{"width", ColumnWidth(span, len(spans), gutter, mode).String()},
			)
		}
		if spacing {
			if last {
				decls = append(decls, Declaration{"margin-right", "0"})
			} else {
				decls = append(decls, Declaration{"margin-right", gutter.String()})
			}
		}
		rs.add(childAt(selector, pos), decls...)
	}
	return rs
}
