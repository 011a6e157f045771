package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"development console", Config{Level: "debug", Development: true, Encoding: "console"}},
		{"production json", Config{Level: "info", Development: false, Encoding: "json"}},
		{"invalid level", Config{Level: "invalid", Encoding: "json"}},
		{"default encoding", Config{Level: "warn", Development: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.config)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewWithLevel_CanChangeLevel(t *testing.T) {
	logger, level, err := NewWithLevel(Config{Level: "info", Encoding: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	level.SetLevel(zapcore.DebugLevel)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
}

func TestDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("APP_ENV", "production")

	logger := Default()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestWithContext(t *testing.T) {
	base := zap.NewNop()
	child := WithContext(base, zap.String("domain", "navbar"))
	assert.NotNil(t, child)
}
