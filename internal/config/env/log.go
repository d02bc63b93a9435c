package env

import (
	"bowling_backend/internal/config"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

const logLevelEnvName = "LOG_LEVEL"

type logConfig struct {
	level zapcore.Level
}

func NewLogConfig() (config.LogConfig, error) {
	level := zapcore.InfoLevel

	raw := os.Getenv(logLevelEnvName)
	if len(raw) != 0 {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
	}

	return &logConfig{level: level}, nil
}

func (cfg *logConfig) Level() zapcore.Level {
	return cfg.level
}
