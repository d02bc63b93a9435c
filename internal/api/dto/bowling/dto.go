package bowling

import "time"

type ScoreRequest struct {
	Rolls string `json:"rolls"` // Comma separated rolls, e.g. "X,7,3,9,0"
}

type ScoreResponse struct {
	Frames      [][]int `json:"frames"`
	FrameScores []int   `json:"frame_scores"`
	Cumulative  []int   `json:"cumulative"`
	Score       int     `json:"score"`
	Strikes     int     `json:"strikes"`
	Spares      int     `json:"spares"`
	Complete    bool    `json:"complete"` // false while fewer than ten frames were bowled
}

type GameResponse struct {
	ID          string    `json:"id"`
	Rolls       string    `json:"rolls"`
	Frames      [][]int   `json:"frames"`
	FrameScores []int     `json:"frame_scores"`
	Score       int       `json:"score"`
	Strikes     int       `json:"strikes"`
	Spares      int       `json:"spares"`
	Complete    bool      `json:"complete"`
	CreatedAt   time.Time `json:"created_at"`
}

type GamesResponse struct {
	Games []GameResponse `json:"games"`
}

type StatsResponse struct {
	GamesScored   int     `json:"games_scored"`
	Average       float64 `json:"average"`
	BestScore     int     `json:"best_score"`
	PerfectGames  int     `json:"perfect_games"`
	Strikes       int     `json:"strikes"`
	Spares        int     `json:"spares"`
	WindowSize    int     `json:"window_size"`    // Games in the rolling window
	WindowAverage float64 `json:"window_average"` // Average over the rolling window
}
