// Package logging provides optional structured debug logging.
//
// A terminal application cannot log to stdout without corrupting its own
// painted region, so logging is off by default. Setting the CASCADE_DEBUG
// environment variable to a file path appends structured zap output there:
//
//	CASCADE_DEBUG=/tmp/cascade.log ./myapp
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "CASCADE_DEBUG"

var (
	once   sync.Once
	logger *zap.Logger
)

func get() *zap.Logger {
	once.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			logger = zap.NewNop()
			return
		}
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
			Encoding:         "console",
			EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
			OutputPaths:      []string{path},
			ErrorOutputPaths: []string{path},
		}
		l, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
			return
		}
		logger = l
	})
	return logger
}

// Debug logs a debug message with structured fields.
func Debug(msg string, fields ...zap.Field) {
	get().Debug(msg, fields...)
}

// Info logs an informational message with structured fields.
func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

// Error logs an error with structured fields.
func Error(msg string, err error, fields ...zap.Field) {
	get().Error(msg, append(fields, zap.Error(err))...)
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	get().Sync() //nolint:errcheck
}
