package report

import "os"

// Colors decides whether styled output is appropriate. An explicit no-color
// request or the NO_COLOR convention always wins; FORCE_COLOR and GitHub
// Actions force styling even without a terminal; otherwise a TTY on stdout
// enables it.
func Colors(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
