// Package gridcss computes CSS layout properties for grid-based page
// layouts and expands them into static CSS rules.
//
// The geometry core is pure. ColumnWidth computes the width a grid cell
// must render at for a given column count, gutter and layout mode, deferring
// mixed-unit arithmetic to a CSS calc() expression. The emitters Row,
// OrderColumns, Gallery and EqualColumns expand one grid declaration into
// the rules for its container, with float and flexbox renditions and
// recorded degradations where a declaration cannot hold in the requested
// mode.
//
// Around the core, grid manifests (*.grid.yaml) declare grids and two
// pipelines consume them.
//
// # Generating
//
// Compile every manifest under a source tree into one stylesheet:
//
//	result, err := gridcss.Generate(gridcss.Config{
//		SourceDir:  "web/styles",
//		OutputFile: "web/static/grid.css",
//	})
//
// # Checking
//
// Report manifest problems and the degradations generation would apply
// silently, without writing anything:
//
//	result, err := gridcss.Check(gridcss.CheckConfig{SourceDir: "web/styles"})
//	if err == nil && result.HasErrors() {
//		// refuse the commit, surface result.Issues
//	}
//
// # Command line
//
// The gridcss command wraps both pipelines and adds an HTML preview
// generator:
//
//	go install github.com/yacobolo/gridcss/cmd/gridcss@latest
package gridcss
