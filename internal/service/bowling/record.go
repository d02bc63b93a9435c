package bowling

import (
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	scoring "bowling_backend/pkg/bowling"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordGame scores the rolls and stores the game for the authenticated bowler
func (s *serv) RecordGame(ctx context.Context, req model.ScoreRequest) (*model.Game, error) {
	bowlerID, ok := middleware.BowlerIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	res, err := s.score(req.Rolls)
	if err != nil {
		return nil, err
	}

	game := &model.Game{
		ID:          uuid.NewString(),
		BowlerID:    bowlerID,
		Rolls:       req.Rolls,
		Frames:      scoring.ToSlices(res.Frames),
		FrameScores: res.FrameScores,
		Score:       res.Total,
		Strikes:     res.Strikes,
		Spares:      res.Spares,
		Complete:    res.Complete,
		CreatedAt:   time.Now().UTC(),
	}

	// Game row and bowler totals change together
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.gameRepo.CreateGame(txCtx, game); err != nil {
			return fmt.Errorf("create game: %w", err)
		}
		if err := s.bowlerRepo.RecordGame(txCtx, bowlerID, game.Score); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrUnauthorized
			}
			return fmt.Errorf("record game for bowler %d: %w", bowlerID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.account(res)

	s.logger.Info("game recorded",
		zap.String("game_id", game.ID),
		zap.Int("bowler_id", bowlerID),
		zap.Int("score", game.Score),
	)
	return game, nil
}
