package token

import (
	"bowling_backend/internal/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateAccessToken(bowler *model.Bowler, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.BowlerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(bowler.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.BowlerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.BowlerClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.BowlerClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// BowlerID extracts the bowler id carried in the token subject.
func BowlerID(claims *model.BowlerClaims) (int, error) {
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject %q: %w", claims.Subject, err)
	}
	return id, nil
}
