package env

import (
	"bowling_backend/internal/config"
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	dsnName         = "PG_DSN"
	maxConnsEnvName = "PG_MAX_CONNS"
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

// NewPGConfig reads PG_DSN and the optional PG_MAX_CONNS pool limit.
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	cfg := &pgConfig{dsn: dsn}

	if raw := os.Getenv(maxConnsEnvName); len(raw) != 0 {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s %q", maxConnsEnvName, raw)
		}
		cfg.maxConns = int32(n)
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

// MaxConns is zero when the pool default applies.
func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
