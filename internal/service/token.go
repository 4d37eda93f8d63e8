package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload carried by a session token. Role and
// InternalSectorID are present only on tokens issued at login; a token issued
// at registration carries the user id alone.
type SessionClaims struct {
	UserID           int64  `json:"user_id"`
	Role             string `json:"role,omitempty"`
	InternalSectorID *int64 `json:"internal_sector_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService encodes and validates signed session tokens.
type TokenService interface {
	Generate(userID int64, role string, internalSectorID *int64) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// minSecretLen is the minimum HS256 secret length accepted. Shorter secrets
// make the token forgeable in practice.
const minSecretLen = 32

// NewTokenService creates a new TokenService instance.
func NewTokenService(secret string, expiry time.Duration) (TokenService, error) {
	if len(secret) < minSecretLen {
		return nil, errors.New("token secret must be at least 32 bytes")
	}
	if expiry <= 0 {
		return nil, errors.New("token expiry must be positive")
	}
	return &tokenService{secret: []byte(secret), expiry: expiry}, nil
}

func (s *tokenService) Generate(userID int64, role string, internalSectorID *int64) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:           userID,
		Role:             role,
		InternalSectorID: internalSectorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}
