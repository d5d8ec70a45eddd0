package gridcss

// Gallery emits a wrapping grid of equal-size cells, columns per row. Cells
// take their width from the column count; under float layout row-start cells
// clear the previous row and row-end cells float right, while flexbox
// galleries wrap and spread cells with space-between justification. Cells in
// the final row drop their bottom spacing so the grid ends flush. A column
// count below one clamps to a single column.
func Gallery(selector string, columns int, opts Options) *RuleSet {
	rs := &RuleSet{}
	if columns < 1 {
		rs.degrade(DegradationColumnsClamped, selector,
			"column count %d clamped to 1", columns)
		columns = 1
	}
	gutter := opts.Gutter
	spacing := gutter.Positive()
	basis := ColumnWidth(Percent(100/float64(columns)), columns, gutter, opts.Layout)

	if opts.Layout == LayoutFlexbox {
		rs.add(selector,
			Declaration{"display", "flex"},
			Declaration{"flex-wrap", "wrap"},
			Declaration{"justify-content", "space-between"},
		)
		// Cells must not grow or space-between has nothing to distribute,
		// and a part-filled final row would stretch.
		cell := []Declaration{
			{"flex-grow", "0"},
			{"flex-shrink", "1"},
			{"flex-basis", basis.String()},
		}
		if spacing {
			cell = append(cell, Declaration{"margin-bottom", gutter.String()})
		}
		rs.add(children(selector), cell...)
	} else {
		rs.add(pseudoPair(selector),
			Declaration{"content", `""`},
			Declaration{"display", "table"},
		)
		rs.add(pseudoAfter(selector), Declaration{"clear", "both"})
		cell := []Declaration{
			{"float", "left"},
			{"width", basis.String()},
		}
		if spacing {
			cell = append(cell,
				Declaration{"margin-right", gutter.String()},
				Declaration{"margin-bottom", gutter.String()},
			)
		}
		rs.add(children(selector), cell...)
		rs.add(nthChild(selector, rowStart(columns)), Declaration{"clear", "both"})
		end := []Declaration{{"float", "right"}}
		if spacing {
			end = append(end, Declaration{"margin-right", "0"})
		}
		rs.add(nthChild(selector, rowEnd(columns)), end...)
	}

	if spacing {
		rs.add(nthLastChild(selector, lastCells(columns)), Declaration{"margin-bottom", "0"})
	}
	return rs
}
