package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestInitialize(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	t.Run("console logger honours verbosity", func(t *testing.T) {
		require.NoError(t, Initialize(2, false))
		assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("json logger defaults to warn", func(t *testing.T) {
		require.NoError(t, Initialize(0, true))
		assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
		assert.True(t, Logger.Desugar().Core().Enabled(zapcore.WarnLevel))
	})
}
