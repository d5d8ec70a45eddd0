package gridcss

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// DefaultInclude selects grid manifests when no include patterns are
// configured.
var DefaultInclude = []string{"**/*.grid.yaml", "**/*.grid.yml"}

// ScanStats tracks what the manifest scan covered.
type ScanStats struct {
	Discovered int // files matched by the include patterns
	Scanned    int // files that survived filtering
	Skipped    int // files dropped by directory or gitignore filtering
}

// skipDirs are well-known directories whose contents are never grid
// manifests of this project.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// inSkippedDir reports whether any segment of the root-relative path is a
// well-known junk directory.
func inSkippedDir(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if skipDirs[seg] {
			return true
		}
	}
	return false
}

// loadIgnore compiles the .gitignore at the scan root, or returns nil when
// there is none. Only the root's ignore file is consulted; nested ignore
// files are rare in the trees this scans and matching them would make scan
// results depend on walk order.
func loadIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// ScanManifests expands the include patterns under root and returns the
// manifest paths that survive filtering, sorted so manifest order (and with
// it rule order) is deterministic. Filtering runs in two layers: well-known
// junk directories first, then the root's .gitignore.
func ScanManifests(root string, include []string, log *zap.Logger) ([]string, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if root == "" {
		root = "."
	}
	if len(include) == 0 {
		include = DefaultInclude
	}

	gi := loadIgnore(root)
	seen := make(map[string]bool)
	var files []string
	var stats ScanStats

	for _, pattern := range include {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("bad include pattern %q: %w", pattern, err)
		}
		log.Debug("expanded include pattern",
			zap.String("pattern", pattern),
			zap.Int("matches", len(matches)))

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.Discovered++

			rel, err := filepath.Rel(root, match)
			if err != nil {
				rel = match
			}
			if inSkippedDir(rel) || (gi != nil && gi.MatchesPath(rel)) {
				stats.Skipped++
				log.Debug("skipping manifest", zap.String("path", match))
				continue
			}

			stats.Scanned++
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, stats, nil
}
