package auth

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	txManager  trm.Manager
	bowlerRepo repository.BowlerRepository
	authRepo   repository.AuthRepository
	jwtConfig  config.JWTConfig
	logger     *zap.Logger
}

func NewAuthService(
	txManager trm.Manager,
	bowlerRepo repository.BowlerRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	logger *zap.Logger,
) service.AuthService {
	return &serv{
		txManager:  txManager,
		bowlerRepo: bowlerRepo,
		authRepo:   authRepo,
		jwtConfig:  jwtConfig,
		logger:     logger,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
