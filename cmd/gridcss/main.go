// Command gridcss compiles grid layout manifests into a static stylesheet,
// checks them for problems and silent layout degradations, and renders an
// HTML preview page.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
