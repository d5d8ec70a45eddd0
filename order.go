package gridcss

import "strconv"

// OrderColumns reorders the children of a row: entry i of order places the
// child at that position at visual order i. Reordering only exists under
// flexbox, so the container always becomes a flex container regardless of
// the ambient layout. Positions outside the child range are emitted as given
// and match nothing at render time; the final entry of order is the
// logically-last child and drops its trailing gutter.
func OrderColumns(selector string, order []int, opts Options) *RuleSet {
	rs := &RuleSet{}
	if len(order) == 0 {
		return rs
	}
	rs.add(selector, Declaration{"display", "flex"})
	spacing := opts.Gutter.Positive()

	for i, pos := range order {
		last := i == len(order)-1
		decls := []Declaration{{"order", strconv.Itoa(i + 1)}}
		if spacing {
			if last {
				decls = append(decls, Declaration{"margin-right", "0"})
			} else {
				decls = append(decls, Declaration{"margin-right", opts.Gutter.String()})
			}
		}
		rs.add(childAt(selector, pos), decls...)
	}
	return rs
}
