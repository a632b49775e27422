package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "COUNTRYFINDER_LOG_LEVEL"

// Initialize creates the global logger with the given level, writing to
// outputPath ("stderr", "stdout" or a file path).
// If level is empty, COUNTRYFINDER_LOG_LEVEL is consulted. If neither is set,
// logging is disabled.
func Initialize(level, outputPath string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if outputPath == "" {
		outputPath = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	// Colour codes are only useful on a terminal.
	if outputPath == "stderr" || outputPath == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Used by tests to capture output.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized, so library code never prints on its own.
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

// LogFetch logs a completed directory fetch.
func LogFetch(endpoint string, status int, count int, elapsed time.Duration) {
	Info("Directory fetch completed",
		zap.String("endpoint", endpoint),
		zap.Int("status_code", status),
		zap.Int("countries", count),
		zap.Duration("elapsed", elapsed),
	)
}

// LogFetchFailure logs a failed directory fetch.
func LogFetchFailure(endpoint string, err error, elapsed time.Duration) {
	Warn("Directory fetch failed",
		zap.String("endpoint", endpoint),
		zap.Error(err),
		zap.Duration("elapsed", elapsed),
	)
}

// LogStatusChange logs a store status transition.
func LogStatusChange(from, to string, seq uint64) {
	Debug("Store status changed",
		zap.String("from", from),
		zap.String("to", to),
		zap.Uint64("seq", seq),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
