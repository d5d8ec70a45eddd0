package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/gridcss"
	"github.com/yacobolo/gridcss/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate grid manifests without writing CSS",
	Long: `Check scans the same manifests as generate but reports problems instead
of failing on the first one: manifest errors, suspicious grid declarations
and the layout degradations generate would apply silently.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("source", ".", "Root directory searched for manifests")
	f.StringSlice("include", nil, "Glob patterns for manifests to include")
	f.String("gutters", "", "Default gutter between cells (e.g. 20px)")
	f.String("layout", "", "Default layout mode: float|flexbox")
	f.String("format", "", "Output format: issues|summary|json")
	f.Bool("strict", false, "Exit 1 on warnings as well as errors (CI mode)")
	f.Int("max-issues", 0, "Cap the issue list (0 = unlimited)")
	f.Bool("print-lines", true, "Show manifest lines under issues")
	f.Bool("print-check-name", true, "Show the (check) suffix on issues")
}

func runCheck(_ *cobra.Command, _ []string) error {
	log := sessionLogger()
	defer func() { _ = log.Sync() }()

	format, err := gridcss.ParseOutputFormat(getStringWithFallback("format", "check.format", ""))
	if err != nil {
		return err
	}

	result, err := gridcss.Check(buildCheckConfig(log))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		opts := report.Options{
			SourceLines: getBoolWithFallback("print-lines", "check.print-lines", true),
			CheckNames:  getBoolWithFallback("print-check-name", "check.print-check-name", true),
			UseColors:   report.Colors(getBoolWithFallback("no-color", "no-color", false)),
		}
		if err := report.Write(os.Stdout, result, format, opts); err != nil {
			return err
		}
	}

	// Soft gate by default: only errors fail the build. Strict mode fails
	// on warnings too.
	strict := getBoolWithFallback("strict", "check.strict", false)
	if result.HasErrors() || (strict && result.HasWarnings()) {
		_ = log.Sync()
		os.Exit(1)
	}
	return nil
}
