package model

// LaneState - running aggregate of scored games
type LaneState struct {
	GamesScored  int // games scored since start
	TotalScore   int // sum of all game totals
	BestScore    int
	PerfectGames int
	Strikes      int
	Spares       int

	GameWindow  []GameResult // latest games, oldest first
	WindowTotal int          // sum of scores in GameWindow
	WindowSize  int          // max length of GameWindow
}

// GameResult - one entry of the rolling window
type GameResult struct {
	Score   int
	Strikes int
	Spares  int
}
