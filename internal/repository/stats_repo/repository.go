package stats_repo

import (
	"bowling_backend/internal/model"
	repoModel "bowling_backend/internal/repository/stats_repo/model"
	"sync"
)

const perfectScore = 300

// StateRepo - in-memory lane statistics, safe for concurrent use
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.LaneState
}

// NewStatsRepository creates an empty repository keeping a rolling window of windowSize games
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &StateRepo{
		state: repoModel.LaneState{
			GameWindow: make([]repoModel.GameResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// AddGame - accounts one scored game
func (r *StateRepo) AddGame(score, strikes, spares int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.GamesScored++
	r.state.TotalScore += score
	r.state.Strikes += strikes
	r.state.Spares += spares
	if score > r.state.BestScore {
		r.state.BestScore = score
	}
	if score == perfectScore {
		r.state.PerfectGames++
	}

	r.state.GameWindow = append(r.state.GameWindow, repoModel.GameResult{
		Score:   score,
		Strikes: strikes,
		Spares:  spares,
	})
	r.state.WindowTotal += score

	// Keep the window bounded
	if len(r.state.GameWindow) > r.state.WindowSize {
		r.state.WindowTotal -= r.state.GameWindow[0].Score
		r.state.GameWindow = r.state.GameWindow[1:]
	}
}

// LaneStats - snapshot of the current aggregate
func (r *StateRepo) LaneStats() model.LaneStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.LaneStats{
		GamesScored:  r.state.GamesScored,
		TotalScore:   r.state.TotalScore,
		BestScore:    r.state.BestScore,
		PerfectGames: r.state.PerfectGames,
		Strikes:      r.state.Strikes,
		Spares:       r.state.Spares,
		WindowSize:   len(r.state.GameWindow),
	}
	if r.state.GamesScored > 0 {
		stats.Average = float64(r.state.TotalScore) / float64(r.state.GamesScored)
	}
	if n := len(r.state.GameWindow); n > 0 {
		stats.WindowAverage = float64(r.state.WindowTotal) / float64(n)
	}

	return stats
}
