package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/pass"
	"bowling_backend/pkg/token"
	"context"
	"errors"
	"time"
)

func (s *serv) Login(ctx context.Context, bowler *model.Bowler) (*model.AuthData, error) {
	stored, err := s.bowlerRepo.GetBowlerByLogin(ctx, bowler.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pass.VerifyPassword(stored.Password, bowler.Password) {
		return nil, service.ErrInvalidCredentials
	}

	return s.openSession(ctx, stored)
}

// openSession stores a new session for the bowler and issues both tokens
func (s *serv) openSession(ctx context.Context, bowler *model.Bowler) (*model.AuthData, error) {
	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			BowlerID:     bowler.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		bowler,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
