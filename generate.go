package gridcss

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config holds generation configuration.
type Config struct {
	// SourceDir is the root searched for grid manifests. Empty means the
	// current directory.
	SourceDir string
	// Include lists doublestar patterns, relative to SourceDir, selecting
	// manifest files. Empty means DefaultInclude.
	Include []string
	// OutputFile is the stylesheet path written by Generate.
	OutputFile string
	// Gutters and Layout are the ambient defaults applied when a grid
	// carries no override. Empty strings select the package defaults,
	// 20px and float.
	Gutters string
	Layout  string
	// Logger receives scan and compile progress at debug level and
	// degradations at warn. Nil disables logging.
	Logger *zap.Logger
}

// GenerateResult summarizes one generation run.
type GenerateResult struct {
	ManifestsLoaded int
	GridsCompiled   int
	RulesEmitted    int
	Degradations    []Degradation
	OutputFile      string
}

// banner heads every generated stylesheet.
const banner = "/* Generated by gridcss. DO NOT EDIT. */\n\n"

func cfgLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// resolveOptions parses the configured ambient defaults, falling back to the
// package defaults where a value is empty.
func resolveOptions(gutters, layout string) (Options, error) {
	opts := DefaultOptions()
	if gutters != "" {
		d, err := ParseDimension(gutters)
		if err != nil {
			return opts, fmt.Errorf(IssueBadGutter, err)
		}
		opts.Gutter = d
	}
	if layout != "" {
		mode, err := ParseLayoutMode(layout)
		if err != nil {
			return opts, fmt.Errorf(IssueBadLayout, err)
		}
		opts.Layout = mode
	}
	return opts, nil
}

// Generate compiles every scanned manifest into one stylesheet and writes it
// to config.OutputFile. The first invalid manifest aborts the run; grids
// compile in manifest order so the output is stable across runs.
func Generate(config Config) (*GenerateResult, error) {
	log := cfgLogger(config.Logger)

	opts, err := resolveOptions(config.Gutters, config.Layout)
	if err != nil {
		return nil, err
	}

	paths, stats, err := ScanManifests(config.SourceDir, config.Include, log)
	if err != nil {
		return nil, err
	}
	log.Debug("scanned for manifests",
		zap.Int("discovered", stats.Discovered),
		zap.Int("skipped", stats.Skipped))

	result := &GenerateResult{OutputFile: config.OutputFile}
	sheet := &Stylesheet{}
	declared := make(map[string]string) // selector -> file:line of first use

	for _, path := range paths {
		m, err := LoadManifest(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := m.Err(); err != nil {
			return nil, err
		}
		result.ManifestsLoaded++
		log.Debug("loaded manifest", zap.String("path", path), zap.Int("grids", len(m.Grids)))

		for i := range m.Grids {
			g := &m.Grids[i]
			rs, err := g.Compile(opts)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, g.Line(), err)
			}

			selector := g.ContainerSelector()
			at := fmt.Sprintf("%s:%d", path, g.Line())
			if first, dup := declared[selector]; dup {
				log.Warn("selector declared twice",
					zap.String("selector", selector),
					zap.String("first", first),
					zap.String("again", at))
			} else {
				declared[selector] = at
			}

			for _, d := range rs.Degradations {
				log.Warn("layout degraded",
					zap.String("selector", d.Selector),
					zap.Stringer("kind", d.Kind),
					zap.String("detail", d.Detail))
			}

			sheet.Append(rs.Rules...)
			result.Degradations = append(result.Degradations, rs.Degradations...)
			result.GridsCompiled++
		}
	}
	result.RulesEmitted = len(sheet.Rules)

	if err := writeStylesheet(config.OutputFile, sheet); err != nil {
		return nil, err
	}
	log.Debug("wrote stylesheet",
		zap.String("path", config.OutputFile),
		zap.Int("rules", result.RulesEmitted))
	return result, nil
}

// writeStylesheet writes the banner and rules to path, creating parent
// directories as needed.
func writeStylesheet(path string, sheet *Stylesheet) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stylesheet: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if _, err := io.WriteString(f, banner); err != nil {
		return err
	}
	_, err = sheet.WriteTo(f)
	return err
}
