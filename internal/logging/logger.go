package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance
	Logger = &SafeLogger{}
)

// SafeLogger wraps a zap logger so that calls are no-ops until the logger
// has been initialized
type SafeLogger struct {
	logger *zap.Logger
}

// NewSafeLogger wraps an existing zap logger
func NewSafeLogger(logger *zap.Logger) *SafeLogger {
	return &SafeLogger{logger: logger}
}

// InitLogger initializes the global logger at the given level.
// An empty level keeps the production default (info).
func InitLogger(logLevel string) error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if logLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "app-cpf"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}

	Logger = &SafeLogger{logger: logger}
	return nil
}

// Zap returns the underlying zap logger, or a no-op logger if unset
func (l *SafeLogger) Zap() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}

func (l *SafeLogger) Debug(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(msg, fields...)
}

func (l *SafeLogger) Info(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info(msg, fields...)
}

func (l *SafeLogger) Warn(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Warn(msg, fields...)
}

func (l *SafeLogger) Error(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Error(msg, fields...)
}

// Fatal logs and exits. With no logger configured it still exits.
func (l *SafeLogger) Fatal(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		os.Exit(1)
	}
	l.logger.Fatal(msg, fields...)
}

// With returns a child logger carrying the given fields
func (l *SafeLogger) With(fields ...zap.Field) *SafeLogger {
	if l == nil || l.logger == nil {
		return &SafeLogger{}
	}
	return &SafeLogger{logger: l.logger.With(fields...)}
}

// Sync flushes buffered log entries
func (l *SafeLogger) Sync() error {
	if l == nil || l.logger == nil {
		return nil
	}
	return l.logger.Sync()
}
