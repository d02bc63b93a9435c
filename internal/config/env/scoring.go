package env

import (
	"bowling_backend/internal/config"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnvName = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"

	defaultStatsWindowSize = 100
	defaultRateLimit       = 5
	defaultRateBurst       = 10
)

type scoringFile struct {
	Scoring struct {
		Strict bool `yaml:"strict"`
	} `yaml:"scoring"`
	Stats struct {
		WindowSize *int `yaml:"window_size"`
	} `yaml:"stats"`
	RateLimit struct {
		RPS   *float64 `yaml:"rps"`
		Burst *int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

type scoringConfig struct {
	strict     bool
	windowSize int
	rateLimit  rate.Limit
	rateBurst  int
}

// ConfigPath - path of the YAML config, CONFIG_PATH or config.yaml
func ConfigPath() string {
	if path := os.Getenv(configPathEnvName); len(path) != 0 {
		return path
	}
	return defaultConfigPath
}

// NewScoringConfigFromYAML reads scoring rules from a YAML file.
// A missing file yields the defaults: permissive scoring, window of 100 games, 5 req/s per IP.
func NewScoringConfigFromYAML(path string) (config.ScoringConfig, error) {
	var file scoringFile

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg := &scoringConfig{
		strict:     file.Scoring.Strict,
		windowSize: defaultStatsWindowSize,
		rateLimit:  defaultRateLimit,
		rateBurst:  defaultRateBurst,
	}

	if file.Stats.WindowSize != nil {
		if *file.Stats.WindowSize <= 0 {
			return nil, fmt.Errorf("stats.window_size must be positive, got %d", *file.Stats.WindowSize)
		}
		cfg.windowSize = *file.Stats.WindowSize
	}
	if file.RateLimit.RPS != nil {
		if *file.RateLimit.RPS <= 0 {
			return nil, fmt.Errorf("rate_limit.rps must be positive, got %v", *file.RateLimit.RPS)
		}
		cfg.rateLimit = rate.Limit(*file.RateLimit.RPS)
	}
	if file.RateLimit.Burst != nil {
		if *file.RateLimit.Burst <= 0 {
			return nil, fmt.Errorf("rate_limit.burst must be positive, got %d", *file.RateLimit.Burst)
		}
		cfg.rateBurst = *file.RateLimit.Burst
	}

	return cfg, nil
}

func (cfg *scoringConfig) Strict() bool {
	return cfg.strict
}

func (cfg *scoringConfig) StatsWindowSize() int {
	return cfg.windowSize
}

func (cfg *scoringConfig) RateLimit() rate.Limit {
	return cfg.rateLimit
}

func (cfg *scoringConfig) RateBurst() int {
	return cfg.rateBurst
}
