package logger

import (
	"testing"

	"github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		" INFO ":  core.LogLevelInfo,
		"warning": core.LogLevelWarn,
		"warn":    core.LogLevelWarn,
		"error":   core.LogLevelError,
		"verbose": core.LogLevelInfo,
		"":        core.LogLevelInfo,
	}

	for name, expected := range testCases {
		assert.Equal(t, expected, ParseLevel(name), "level %q", name)
	}
}

func TestZapLogger_SetLevelFiltersAtRuntime(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	zc, logs := observer.New(level)
	l := NewWithCore(zc, level)

	l.Debug("hidden", nil)
	l.Info("shown", map[string]any{"userId": "guest-1"})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, "guest-1", logs.All()[0].ContextMap()["userId"])

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("filtered", nil)
	l.Error("kept", nil)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "kept", logs.All()[1].Message)

	l.SetLevel(core.LogLevelDebug)
	l.Debug("now visible", nil)
	assert.Equal(t, 3, logs.Len())
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Level: core.LogLevelWarn, JSON: true})
	require.NoError(t, err)

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.NotNil(t, l.Zap())
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Error("ignored", map[string]any{"k": "v"})
	assert.NoError(t, l.Flush())
}
