package bowling

import (
	"bowling_backend/internal/model"
	scoring "bowling_backend/pkg/bowling"
	"context"

	"go.uber.org/zap"
)

// Score scores the rolls and accounts the game in lane statistics
func (s *serv) Score(ctx context.Context, req model.ScoreRequest) (*model.ScoreResult, error) {
	res, err := s.score(req.Rolls)
	if err != nil {
		return nil, err
	}
	s.account(res)
	return toScoreResult(res), nil
}

// score runs the scoring pipeline. Rejected rolls are counted as invalid.
func (s *serv) score(rolls string) (scoring.Result, error) {
	res, err := scoring.Score(rolls, s.cfg.Strict())
	if err != nil {
		s.metrics.ObserveInvalid()
		s.logger.Debug("rejected rolls", zap.String("rolls", rolls), zap.Error(err))
		return scoring.Result{}, err
	}
	return res, nil
}

// account adds a successfully scored game to metrics and lane statistics.
func (s *serv) account(res scoring.Result) {
	s.metrics.ObserveGame(res.Total)
	s.statsRepo.AddGame(res.Total, res.Strikes, res.Spares)
}

func (s *serv) LaneStats(_ context.Context) model.LaneStats {
	return s.statsRepo.LaneStats()
}

func toScoreResult(res scoring.Result) *model.ScoreResult {
	return &model.ScoreResult{
		Frames:      scoring.ToSlices(res.Frames),
		FrameScores: res.FrameScores,
		Cumulative:  res.Cumulative,
		Total:       res.Total,
		Strikes:     res.Strikes,
		Spares:      res.Spares,
		Complete:    res.Complete,
	}
}
