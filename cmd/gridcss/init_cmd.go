package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .gridcss.yaml config file",
	Long:  `Create a .gridcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".gridcss.yaml"); err == nil && !force {
			return fmt.Errorf(".gridcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".gridcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .gridcss.yaml")
		return nil
	},
}

const defaultConfig = `# gridcss configuration
# Precedence: flags > GRIDCSS_* environment > this file > built-in defaults.

# Ambient layout defaults, applied when a grid carries no override.
gutters: 20px
layout: float          # float | flexbox

# Manifest scanning.
source: .
include:
  - "**/*.grid.yaml"
  - "**/*.grid.yml"

# Stylesheet written by gridcss generate.
output: grid.css

check:
  format: issues       # issues | summary | json
  strict: false        # exit 1 on warnings too
  max-issues: 0        # 0 = unlimited
  print-lines: true
  print-check-name: true

preview:
  css: grid.css
  output: preview.html
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
