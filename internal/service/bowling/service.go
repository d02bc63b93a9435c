package bowling

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/metrics"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	cfg        config.ScoringConfig
	gameRepo   repository.GameRepository
	bowlerRepo repository.BowlerRepository
	statsRepo  repository.StatsRepository
	txManager  trm.Manager
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewBowlingService - scoring, game history and lane statistics
func NewBowlingService(
	cfg config.ScoringConfig,
	gameRepo repository.GameRepository,
	bowlerRepo repository.BowlerRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) service.BowlingService {
	return &serv{
		cfg:        cfg,
		gameRepo:   gameRepo,
		bowlerRepo: bowlerRepo,
		statsRepo:  statsRepo,
		txManager:  txManager,
		metrics:    metrics,
		logger:     logger,
	}
}
