package bowler_repo

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "bowlers"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colBestScore    = "best_score"
	colGamesPlayed  = "games_played"

	uniqueViolation = "23505"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewBowlerRepository(dbc *pgxpool.Pool) repository.BowlerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateBowler - inserts a bowler, returns the new ID.
// A taken login gives repository.ErrAlreadyExists
func (r *repo) CreateBowler(ctx context.Context, bowler *model.Bowler) (int, error) {
	query := r.psql.Insert(table).
		Columns(colName, colLogin, colPasswordHash).
		Values(bowler.Name, bowler.Login, bowler.Password).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, repository.ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

func (r *repo) GetBowlerByLogin(ctx context.Context, login string) (*model.Bowler, error) {
	return r.getBowler(ctx, sq.Eq{colLogin: login})
}

func (r *repo) GetBowler(ctx context.Context, id int) (*model.Bowler, error) {
	return r.getBowler(ctx, sq.Eq{colID: id})
}

func (r *repo) getBowler(ctx context.Context, where sq.Eq) (*model.Bowler, error) {
	query := r.psql.Select(colID, colName, colLogin, colPasswordHash, colBestScore, colGamesPlayed).
		From(table).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var bowler model.Bowler
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&bowler.ID, &bowler.Name, &bowler.Login, &bowler.Password, &bowler.BestScore, &bowler.GamesPlayed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &bowler, nil
}

// RecordGame - increments games_played and raises best_score when beaten
func (r *repo) RecordGame(ctx context.Context, id int, score int) error {
	query := r.psql.Update(table).
		Set(colGamesPlayed, sq.Expr(colGamesPlayed+" + 1")).
		Set(colBestScore, sq.Expr("GREATEST("+colBestScore+", ?)", score)).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
