package model

import "time"

type ScoreRequest struct {
	Rolls string
}

// ScoreResult - score sheet of one game
type ScoreResult struct {
	Frames      [][]int
	FrameScores []int
	Cumulative  []int
	Total       int
	Strikes     int
	Spares      int
	Complete    bool
}

// Game - a scored game recorded for a bowler
type Game struct {
	ID          string
	BowlerID    int
	Rolls       string
	Frames      [][]int
	FrameScores []int
	Score       int
	Strikes     int
	Spares      int
	Complete    bool
	CreatedAt   time.Time
}
