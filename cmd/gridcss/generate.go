package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/gridcss"
	"github.com/yacobolo/gridcss/internal/report"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compile grid manifests into a stylesheet",
	Long: `Scan for grid manifests, compute the layout rules for every grid and
write the combined stylesheet. Grids compile in manifest order, so the
output is stable across runs.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", ".", "Root directory searched for manifests")
	f.StringSlice("include", nil, "Glob patterns for manifests to include")
	f.StringP("output", "o", "grid.css", "Stylesheet file to write")
	f.String("gutters", "", "Default gutter between cells (e.g. 20px)")
	f.String("layout", "", "Default layout mode: float|flexbox")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	log := sessionLogger()
	defer func() { _ = log.Sync() }()

	result, err := gridcss.Generate(buildGenerateConfig(log))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	useColors := report.Colors(getBoolWithFallback("no-color", "no-color", false))
	line := fmt.Sprintf("wrote %s: %d manifests, %d grids, %d rules",
		result.OutputFile, result.ManifestsLoaded, result.GridsCompiled, result.RulesEmitted)
	if n := len(result.Degradations); n > 0 {
		line += fmt.Sprintf(" (%d degraded, see warnings)", n)
	}
	fmt.Printf("%s %s\n", report.RenderStyle(report.StyleGreen, "ok:", useColors), line)
	return nil
}
