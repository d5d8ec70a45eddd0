package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/gridcss"
	"go.uber.org/zap"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags (PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".gridcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user actually set
	// are loaded; unset flag defaults must not mask file or env values
	// that live under a different key, like check.strict.
	if err := k.Load(posflag.Provider(changedFlags(cmd.Flags()), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// changedFlags returns a flag set holding only the flags that were set on
// the command line.
func changedFlags(flags *pflag.FlagSet) *pflag.FlagSet {
	changed := pflag.NewFlagSet("changed", pflag.ContinueOnError)
	flags.Visit(func(f *pflag.Flag) {
		changed.AddFlag(f)
	})
	return changed
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (GRIDCSS_* prefix)
	if err := k.Load(env.Provider("GRIDCSS_", ".", func(s string) string {
		// GRIDCSS_GUTTERS -> gutters
		// GRIDCSS_NO_COLOR -> no-color
		// GRIDCSS_CHECK__MAX_ISSUES -> check.max-issues
		key := strings.ToLower(strings.TrimPrefix(s, "GRIDCSS_"))
		key = strings.ReplaceAll(key, "__", ".")
		return strings.ReplaceAll(key, "_", "-")
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf
// state.
func buildGenerateConfig(log *zap.Logger) gridcss.Config {
	return gridcss.Config{
		SourceDir:  getStringWithFallback("source", "source", "."),
		Include:    getStringsWithFallback("include", "include"),
		OutputFile: getStringWithFallback("output", "output", "grid.css"),
		Gutters:    getStringWithFallback("gutters", "gutters", ""),
		Layout:     getStringWithFallback("layout", "layout", ""),
		Logger:     log,
	}
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf
// state.
func buildCheckConfig(log *zap.Logger) gridcss.CheckConfig {
	return gridcss.CheckConfig{
		SourceDir: getStringWithFallback("source", "source", "."),
		Include:   getStringsWithFallback("include", "include"),
		Gutters:   getStringWithFallback("gutters", "gutters", ""),
		Layout:    getStringWithFallback("layout", "layout", ""),
		MaxIssues: getIntWithFallback("max-issues", "check.max-issues", 0),
		Logger:    log,
	}
}

// getStringWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file
// key. Nil means "use the library default".
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return nil
}

// getBoolWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
