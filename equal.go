package gridcss

// EqualColumns forces every immediate child of the container to equal width
// in a single row. Flexbox containers share the space through equal flex
// bases. Any other mode falls back to a fixed table layout: cell spacing
// carries the gutter, and the container is widened by twice the gutter and
// pulled left by one gutter so the outer spacing slots cancel and the
// rendered width stays at 100% of the parent.
func EqualColumns(selector string, opts Options) *RuleSet {
	rs := &RuleSet{}
	gutter := opts.Gutter
	spacing := gutter.Positive()

	if opts.Layout == LayoutFlexbox {
		rs.add(selector, Declaration{"display", "flex"})
		cell := []Declaration{
			{"flex-grow", "1"},
			{"flex-shrink", "1"},
			{"flex-basis", "100%"},
		}
		if spacing {
			cell = append(cell, Declaration{"margin-right", gutter.String()})
		}
		rs.add(children(selector), cell...)
		if spacing {
			rs.add(lastChild(selector), Declaration{"margin-right", "0"})
		}
		return rs
	}

	container := []Declaration{
		{"display", "table"},
		{"table-layout", "fixed"},
	}
	if spacing {
		container = append(container,
			Declaration{"border-spacing", gutter.String() + " 0"},
			Declaration{"width", Percent(100).Add(gutter.Scale(2)).String()},
			Declaration{"margin-left", gutter.Neg().String()},
		)
	} else {
		container = append(container, Declaration{"width", "100%"})
	}
	rs.add(selector, container...)
	rs.add(children(selector), Declaration{"display", "table-cell"})
	return rs
}
