package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"topic-indexer/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
		want zapcore.Level
	}{
		{"default", config.LogConfig{}, zapcore.InfoLevel},
		{"debug", config.LogConfig{Level: "debug"}, zapcore.DebugLevel},
		{"development warn", config.LogConfig{Level: "warn", Development: true}, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, level, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.want, level.Level())
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestLevelIsAdjustable(t *testing.T) {
	logger, level, err := New(config.LogConfig{Level: "error"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	level.SetLevel(zapcore.DebugLevel)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
