package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_HonorsConfiguredLevel(t *testing.T) {
	l, err := New(&Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_DebugLevel(t *testing.T) {
	l, err := New(&Config{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := New(&Config{Level: "chatty", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}
