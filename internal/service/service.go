package service

import (
	"bowling_backend/internal/model"
	"context"
	"errors"
)

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginTaken         = errors.New("login already taken")
)

type BowlingService interface {
	// Score scores a roll string without storing it.
	Score(ctx context.Context, req model.ScoreRequest) (*model.ScoreResult, error)
	// RecordGame scores a roll string and stores it for the authenticated bowler.
	RecordGame(ctx context.Context, req model.ScoreRequest) (*model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGames(ctx context.Context, limit int) ([]model.Game, error)
	LaneStats(ctx context.Context) model.LaneStats
}

type AuthService interface {
	Register(ctx context.Context, bowler *model.Bowler) (*model.AuthData, error)
	Login(ctx context.Context, bowler *model.Bowler) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
