package zaphandler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/logger"
	"github.com/philipp01105/quicklog/registry"
)

func TestHandle(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	h := New(obs)

	ts := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	err := h.Handle(&core.Entry{
		Time:    ts,
		Level:   core.WarnLevel,
		Logger:  "cache",
		Message: "evicted",
		Fields: []core.Field{
			logger.String("key", "user:1"),
			logger.Int("size", 512),
			logger.Bool("hot", true),
			logger.Err(errors.New("expired")),
		},
	})
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	got := logs.All()[0]
	require.Equal(t, zapcore.WarnLevel, got.Level)
	require.Equal(t, "cache", got.LoggerName)
	require.Equal(t, "evicted", got.Message)
	require.True(t, got.Time.Equal(ts))
	require.Equal(t, map[string]interface{}{
		"key":   "user:1",
		"size":  int64(512),
		"hot":   true,
		"error": "expired",
	}, got.ContextMap())
}

func TestHandleRespectsCoreLevel(t *testing.T) {
	obs, logs := observer.New(zapcore.ErrorLevel)
	h := New(obs)

	require.NoError(t, h.Handle(&core.Entry{Level: core.InfoLevel, Message: "quiet"}))
	require.Zero(t, logs.Len())
}

func TestFatalDoesNotExit(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	h := NewFromLogger(zap.New(obs))

	require.NoError(t, h.Handle(&core.Entry{Level: core.FatalLevel, Message: "down"}))
	require.NoError(t, h.Handle(&core.Entry{Level: core.PanicLevel, Message: "worse"}))
	require.Equal(t, 2, logs.Len())
	require.Equal(t, zapcore.FatalLevel, logs.All()[0].Level)
	require.Equal(t, zapcore.PanicLevel, logs.All()[1].Level)
}

func TestThroughRegistry(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	reg := registry.New()
	reg.AddHandler(New(obs))
	reg.SetLevel(core.InfoLevel)

	log := logger.NewDeferred("bridge", logger.WithRegistry(reg))
	log.Info("hello zap", logger.Duration("took", time.Second))
	log.Debug("filtered by the registry")

	require.False(t, log.Installed())
	require.Equal(t, 1, logs.FilterMessage("hello zap").Len())
	require.Zero(t, logs.FilterMessage("filtered by the registry").Len())
	require.Equal(t, time.Second, logs.All()[0].ContextMap()["took"])
	require.NoError(t, reg.Close())
}
