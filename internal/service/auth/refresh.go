package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/token"
	"context"
	"errors"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Hash of the refresh token for a live session
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrUnauthorized
		}
		return "", err
	}

	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", service.ErrUnauthorized
	}

	bowler, err := s.authRepo.GetBowlerBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrUnauthorized
		}
		return "", err
	}

	return token.GenerateAccessToken(
		bowler,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
