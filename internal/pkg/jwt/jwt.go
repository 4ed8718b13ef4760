package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/quickchat/internal/model"
)

type Generator struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (g *Generator) GenerateSessionToken(userID, sessionID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(g.ttl)

	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateSessionToken(tokenString string) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse session JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.SessionClaims); ok && token.Valid {
		if claims.Subject == "" || claims.SessionID == "" {
			return nil, fmt.Errorf("incomplete session JWT token")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid session JWT token")
}
