package game_repo

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "games"
	colID          = "id"
	colBowlerID    = "bowler_id"
	colRolls       = "rolls"
	colFrames      = "frames"
	colFrameScores = "frame_scores"
	colScore       = "score"
	colStrikes     = "strikes"
	colSpares      = "spares"
	colComplete    = "complete"
	colCreatedAt   = "created_at"
)

var columns = []string{
	colID, colBowlerID, colRolls, colFrames, colFrameScores,
	colScore, colStrikes, colSpares, colComplete, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateGame - stores a scored game, frames go to a jsonb column
func (r *repo) CreateGame(ctx context.Context, game *model.Game) error {
	framesJSON, err := json.Marshal(game.Frames)
	if err != nil {
		return err
	}

	query := r.psql.Insert(table).
		Columns(columns...).
		Values(
			game.ID, game.BowlerID, game.Rolls, framesJSON, game.FrameScores,
			game.Score, game.Strikes, game.Spares, game.Complete, game.CreatedAt,
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetGame - one game of the bowler, repository.ErrNotFound for someone else's game
func (r *repo) GetGame(ctx context.Context, bowlerID int, id string) (*model.Game, error) {
	query := r.psql.Select(columns...).
		From(table).
		Where(sq.Eq{colID: id, colBowlerID: bowlerID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	game, err := scanGame(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return game, nil
}

// ListGames - games of the bowler, newest first
func (r *repo) ListGames(ctx context.Context, bowlerID int, limit uint64) ([]model.Game, error) {
	query := r.psql.Select(columns...).
		From(table).
		Where(sq.Eq{colBowlerID: bowlerID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(limit)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]model.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}

	return games, rows.Err()
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var (
		game       model.Game
		framesJSON []byte
	)

	err := row.Scan(
		&game.ID, &game.BowlerID, &game.Rolls, &framesJSON, &game.FrameScores,
		&game.Score, &game.Strikes, &game.Spares, &game.Complete, &game.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(framesJSON, &game.Frames); err != nil {
		return nil, fmt.Errorf("decode frames of game %s: %w", game.ID, err)
	}

	return &game, nil
}
