package converter

import (
	dto "bowling_backend/internal/api/dto/bowling"
	"bowling_backend/internal/model"
)

func ToScoreRequest(req dto.ScoreRequest) model.ScoreRequest {
	return model.ScoreRequest{
		Rolls: req.Rolls,
	}
}

func ToScoreResponse(res model.ScoreResult) dto.ScoreResponse {
	return dto.ScoreResponse{
		Frames:      res.Frames,
		FrameScores: res.FrameScores,
		Cumulative:  res.Cumulative,
		Score:       res.Total,
		Strikes:     res.Strikes,
		Spares:      res.Spares,
		Complete:    res.Complete,
	}
}

func ToGameResponse(game model.Game) dto.GameResponse {
	return dto.GameResponse{
		ID:          game.ID,
		Rolls:       game.Rolls,
		Frames:      game.Frames,
		FrameScores: game.FrameScores,
		Score:       game.Score,
		Strikes:     game.Strikes,
		Spares:      game.Spares,
		Complete:    game.Complete,
		CreatedAt:   game.CreatedAt,
	}
}

func ToGamesResponse(games []model.Game) dto.GamesResponse {
	result := make([]dto.GameResponse, len(games))
	for i, g := range games {
		result[i] = ToGameResponse(g)
	}
	return dto.GamesResponse{Games: result}
}

func ToStatsResponse(stats model.LaneStats) dto.StatsResponse {
	return dto.StatsResponse{
		GamesScored:   stats.GamesScored,
		Average:       stats.Average,
		BestScore:     stats.BestScore,
		PerfectGames:  stats.PerfectGames,
		Strikes:       stats.Strikes,
		Spares:        stats.Spares,
		WindowSize:    stats.WindowSize,
		WindowAverage: stats.WindowAverage,
	}
}
