package repository

import (
	"bowling_backend/internal/model"
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type GameRepository interface {
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, bowlerID int, id string) (*model.Game, error)
	ListGames(ctx context.Context, bowlerID int, limit uint64) ([]model.Game, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetBowlerBySessionID(ctx context.Context, sessionID string) (*model.Bowler, error)
}

type BowlerRepository interface {
	CreateBowler(ctx context.Context, bowler *model.Bowler) (id int, err error)
	GetBowlerByLogin(ctx context.Context, login string) (*model.Bowler, error)
	GetBowler(ctx context.Context, id int) (*model.Bowler, error)

	// RecordGame bumps games played and keeps the best score.
	RecordGame(ctx context.Context, id int, score int) error
}

type StatsRepository interface {
	LaneStats() model.LaneStats
	AddGame(score, strikes, spares int)
}
