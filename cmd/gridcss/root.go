package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridcss",
	Short: "Grid geometry calculator and CSS generator",
	Long: `gridcss compiles grid manifests (*.grid.yaml) into a static stylesheet:
column widths, float clearing and flexbox fallbacks computed from column
counts and gutters, with mixed-unit arithmetic deferred to CSS calc().`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig must run here because generateCmd's PreRunE is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress output (exit code only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().String("config", ".gridcss.yaml", "Config file path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
