package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/gridcss"
	"github.com/yacobolo/gridcss/internal/report"
	"go.uber.org/zap"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Write an HTML page demonstrating every grid",
	Long: `Preview builds a static HTML page with one section per grid, populated
with numbered placeholder cells and linked against the generated
stylesheet. Open it in a browser to see what the rules do.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.String("source", ".", "Root directory searched for manifests")
	f.StringSlice("include", nil, "Glob patterns for manifests to include")
	f.String("css", "", "Stylesheet href written into the page (default grid.css)")
	f.String("output", "", "HTML file to write (default preview.html)")
}

func runPreview(_ *cobra.Command, _ []string) error {
	log := sessionLogger()
	defer func() { _ = log.Sync() }()

	source := getStringWithFallback("source", "source", ".")
	include := getStringsWithFallback("include", "include")
	cssHref := getStringWithFallback("css", "preview.css", "grid.css")
	output := getStringWithFallback("output", "preview.output", "preview.html")

	paths, _, err := gridcss.ScanManifests(source, include, log)
	if err != nil {
		return err
	}

	// Preview is best effort: a manifest that does not parse is skipped
	// with a warning instead of aborting the page.
	var manifests []*gridcss.Manifest
	for _, path := range paths {
		m, err := gridcss.LoadManifest(path)
		if err != nil {
			log.Warn("skipping manifest", zap.String("path", path), zap.Error(err))
			continue
		}
		manifests = append(manifests, m)
	}

	doc := gridcss.PreviewDocument(manifests, cssHref, log)
	doc.Indent(2)
	if err := doc.WriteToFile(output); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	useColors := report.Colors(getBoolWithFallback("no-color", "no-color", false))
	fmt.Printf("%s wrote %s: %d manifests against %s\n",
		report.RenderStyle(report.StyleGreen, "ok:", useColors),
		output, len(manifests), cssHref)
	return nil
}
