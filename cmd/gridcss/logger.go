package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// buildLogger constructs the console logger the library logs through:
// colored capital levels on a terminal, plain capitals otherwise. Verbose
// lowers the level to debug, quiet raises it to error.
func buildLogger(verbose, quiet, noColor bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeCaller = nil
	encCfg.TimeKey = zapcore.OmitKey
	if colorTerminal(os.Stderr, noColor) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case verbose:
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// colorTerminal mirrors the report package's color policy for the logger's
// stream.
func colorTerminal(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if info, err := f.Stat(); err == nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// sessionLogger builds the logger from the resolved verbosity keys.
func sessionLogger() *zap.Logger {
	return buildLogger(
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
		getBoolWithFallback("no-color", "no-color", false),
	)
}
