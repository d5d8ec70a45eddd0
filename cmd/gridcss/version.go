package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse --short HEAD)" ./cmd/gridcss
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of gridcss",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("gridcss %s (commit %s, built %s)\n", version, commit, date)
	},
}
