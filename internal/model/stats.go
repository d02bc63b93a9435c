package model

// LaneStats - aggregate over every game scored since start
type LaneStats struct {
	GamesScored  int
	TotalScore   int
	Average      float64
	BestScore    int
	PerfectGames int
	Strikes      int
	Spares       int

	WindowSize    int
	WindowAverage float64
}
