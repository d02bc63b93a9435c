package bowling

import (
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"context"
	"errors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (s *serv) GetGame(ctx context.Context, id string) (*model.Game, error) {
	bowlerID, ok := middleware.BowlerIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	game, err := s.gameRepo.GetGame(ctx, bowlerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// ListGames returns the bowler's latest games. limit <= 0 means the default of 20, capped at 100.
func (s *serv) ListGames(ctx context.Context, limit int) ([]model.Game, error) {
	bowlerID, ok := middleware.BowlerIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	return s.gameRepo.ListGames(ctx, bowlerID, uint64(limit))
}
