package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger("")
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
	assert.False(t, Logger.logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	err := InitLogger("debug")
	require.NoError(t, err)
	assert.True(t, Logger.logger.Core().Enabled(zapcore.DebugLevel))

	err = InitLogger("warn")
	require.NoError(t, err)
	assert.False(t, Logger.logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.logger.Core().Enabled(zapcore.WarnLevel))
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	previous := Logger

	err := InitLogger("invalid")
	assert.Error(t, err)
	assert.Same(t, previous, Logger)
}

func TestSafeLogger_WritesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewSafeLogger(zap.New(core))

	logger.Debug("debug message")
	logger.Info("info message", zap.String("key", "value"))
	logger.Warn("warn message", zap.Int("count", 42))
	logger.Error("error message", zap.Bool("flag", true))

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, "value", entries[1].ContextMap()["key"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestSafeLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewSafeLogger(zap.New(core)).With(zap.String("request_id", "abc"))

	logger.Info("scoped")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
}

func TestSafeLogger_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	// All methods should be safe to call with nil logger
	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
	assert.NoError(t, logger.Sync())
	assert.NotNil(t, logger.Zap())
	assert.NotNil(t, logger.With(zap.String("k", "v")))
}

func TestSafeLogger_NilReceiver(t *testing.T) {
	var logger *SafeLogger

	logger.Info("test")
	logger.Error("test")
	assert.NotNil(t, logger.Zap())
}
