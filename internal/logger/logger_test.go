package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&config.Config{Env: config.EnvProduction, LogLevel: "warn"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.NotNil(t, NewSugared(l))

	_, err = NewLogger(&config.Config{Env: config.EnvDevelopment, LogLevel: "loud"})
	assert.Error(t, err)
}
