package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		cfg   Config
		level zapcore.Level
	}{
		{Config{}, zapcore.InfoLevel},
		{Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{Config{Level: "warn", Format: "json"}, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		log, err := New(tt.cfg)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(tt.level))
		assert.False(t, log.Core().Enabled(tt.level-1))
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
}
