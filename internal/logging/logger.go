package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "README_AGENT_LOG_LEVEL"

// Options controls logger construction.
type Options struct {
	// Level is the minimum level. Empty falls back to LogLevelEnvVar,
	// and if that is empty too the logger is silent.
	Level string
	// OutputPath is a file path, "stdout" or "stderr". Empty means stderr.
	// The TUI owns the terminal, so interactive runs log to a file.
	OutputPath string
}

// Initialize creates a new logger with the specified level writing to stderr.
func Initialize(level string) error {
	return InitializeWithOptions(Options{Level: level})
}

// InitializeWithOptions creates a new logger from opts.
func InitializeWithOptions(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := opts.OutputPath
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	// Colour codes only make sense on a terminal
	if output == "stdout" || output == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeFromEnv initializes the logger from the README_AGENT_LOG_LEVEL
// environment variable. Silent when the variable is unset.
func InitializeFromEnv() error {
	return Initialize("")
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSelection logs a sidebar category change
func LogSelection(from, to string) {
	Debug("Category selected",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogGenerate logs a generate flow event ("started", "completed", "cancelled", "rejected")
func LogGenerate(event string, repoURL string, run int, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("repo_url", repoURL),
		zap.Int("run", run),
	}
	if elapsed > 0 {
		fields = append(fields, zap.Duration("elapsed", elapsed))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Warn("Generate event", fields...)
		return
	}
	Info("Generate event", fields...)
}

// LogClipboard logs a clipboard write. Failures are logged at warn level
// because the UI does not report them.
func LogClipboard(category string, length int, err error) {
	if err != nil {
		Warn("Clipboard write failed",
			zap.String("category", category),
			zap.Int("length", length),
			zap.Error(err),
		)
		return
	}
	Debug("Clipboard write",
		zap.String("category", category),
		zap.Int("length", length),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
