package config

import (
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type ScoringConfig interface {
	// Strict rejects games that break pin limits instead of scoring them as given.
	Strict() bool
	StatsWindowSize() int
	RateLimit() rate.Limit
	RateBurst() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LogConfig interface {
	Level() zapcore.Level
}
