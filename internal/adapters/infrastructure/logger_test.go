package infrastructure

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestZapLoggerAdapter_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLoggerAdapter(zap.New(core))

	logger.Debug("debug message", ports.F("city", "london"))
	logger.Info("info message", ports.F("user_id", uint(7)))
	logger.Warn("warn message", ports.F("error", stderrors.New("redis down")))
	logger.Error("error message")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "london", entries[0].ContextMap()["city"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, uint64(7), entries[1].ContextMap()["user_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "redis down", entries[2].ContextMap()["error"])

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "error message", entries[3].Message)
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(config.LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewZapLogger(config.LogConfig{Level: "loud"})
	assert.True(t, errors.IsConfigurationError(err))
}
