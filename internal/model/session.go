package model

import "time"

// Session - a refresh session of a bowler. RefreshToken holds the token hash, never the token.
type Session struct {
	ID           string
	BowlerID     int
	RefreshToken string
	ExpiresAt    time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
