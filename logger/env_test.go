package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Run("empty environment", func(t *testing.T) {
		cfg, err := LoadEnvConfig()
		require.NoError(t, err)
		require.Equal(t, &EnvConfig{}, cfg)
	})

	t.Run("all variables", func(t *testing.T) {
		t.Setenv("QUICKLOG_LEVEL", "debug")
		t.Setenv("QUICKLOG_TIME_FORMAT", "15:04")
		t.Setenv("QUICKLOG_DISABLE", "true")

		cfg, err := LoadEnvConfig()
		require.NoError(t, err)
		require.Equal(t, &EnvConfig{Level: "debug", TimestampFormat: "15:04", Disable: true}, cfg)
		require.Equal(t, DebugLevel, cfg.LevelOr(ErrorLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("QUICKLOG_LEVEL", "loud")
		t.Setenv("QUICKLOG_TIME_FORMAT", "15:04")

		cfg, err := LoadEnvConfig()
		require.ErrorIs(t, err, ErrEnvConfigNotValid)
		require.NotNil(t, cfg)
		require.Equal(t, "15:04", cfg.TimestampFormat)
		require.Equal(t, InfoLevel, cfg.LevelOr(InfoLevel))
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("QUICKLOG_DISABLE", "maybe")

		cfg, err := LoadEnvConfig()
		require.ErrorIs(t, err, ErrEnvConfigNotValid)
		require.Nil(t, cfg)
	})
}

func TestLevelOrNil(t *testing.T) {
	var cfg *EnvConfig
	require.Equal(t, WarnLevel, cfg.LevelOr(WarnLevel))
}
