package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identify a signed-in user and the gateway session they own.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}
