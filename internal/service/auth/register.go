package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"bowling_backend/pkg/pass"
	"context"
	"errors"

	"go.uber.org/zap"
)

func (s *serv) Register(ctx context.Context, bowler *model.Bowler) (*model.AuthData, error) {
	// Hash the password before it reaches storage
	passwordHash, err := pass.HashPassword(bowler.Password)
	if err != nil {
		return nil, err
	}
	bowler.Password = passwordHash

	var data *model.AuthData

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Create the bowler
		id, err := s.bowlerRepo.CreateBowler(ctx, bowler)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				return service.ErrLoginTaken
			}
			return err
		}
		bowler.ID = id

		// 2. Open a session and issue tokens
		data, err = s.openSession(ctx, bowler)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("bowler registered", zap.Int("bowler_id", bowler.ID), zap.String("login", bowler.Login))
	return data, nil
}
