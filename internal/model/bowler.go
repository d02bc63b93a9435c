package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type Bowler struct {
	ID          int
	Name        string
	Login       string
	Password    string
	BestScore   int
	GamesPlayed int
}

type BowlerClaims struct {
	jwt.RegisteredClaims
}
