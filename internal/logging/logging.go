// Package logging configures the process-wide zap logger.
//
// Lux is a TUI: stdout and stderr belong to the terminal renderer, so
// diagnostic output always goes to a log file. Logging is silent unless
// a level is requested explicitly or via LUX_LOG_LEVEL.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnvVar controls logging verbosity when no level is passed to
// Initialize. Valid values: "debug", "info", "warn", "error".
const LevelEnvVar = "LUX_LOG_LEVEL"

var logger = zap.NewNop()

// DefaultPath returns the default log file location under the user
// state directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lux.log"
	}
	return filepath.Join(home, ".local", "state", "lux", "lux.log")
}

// Initialize builds the global logger writing to path at the given
// level. An empty level falls back to LUX_LOG_LEVEL; if that is also
// empty the logger stays a no-op.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = built
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}
