package logger

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/philipp01105/quicklog/core"
)

// EnvPrefix prefixes every environment variable read by LoadEnvConfig
const EnvPrefix = "QUICKLOG_"

var (
	ErrEnvConfigNotValid = errors.New("environment variables not valid")
)

// EnvConfig holds the environment overrides for the default setup
type EnvConfig struct {
	// Level replaces the terminal-based default level (QUICKLOG_LEVEL)
	Level string `env:"LEVEL"`
	// TimestampFormat replaces the default time layout (QUICKLOG_TIME_FORMAT)
	TimestampFormat string `env:"TIME_FORMAT"`
	// Disable skips the default handler entirely (QUICKLOG_DISABLE)
	Disable bool `env:"DISABLE"`
}

// LoadEnvConfig reads EnvConfig from the environment. When only the
// level is invalid, the parsed config is returned alongside the error.
func LoadEnvConfig() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvConfigNotValid, err.Error())
	}

	if cfg.Level != "" {
		if _, err := core.ParseLevel(cfg.Level); err != nil {
			return &cfg, fmt.Errorf("%w: %sLEVEL: %s", ErrEnvConfigNotValid, EnvPrefix, err.Error())
		}
	}
	return &cfg, nil
}

// LevelOr returns the configured level, or def when unset or invalid
func (c *EnvConfig) LevelOr(def core.Level) core.Level {
	if c == nil || c.Level == "" {
		return def
	}
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return def
	}
	return level
}
