package utils

import (
	"errors"
	"fmt"
	"time"

	"counpaign/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenConfig holds the signing settings for access tokens.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// GenerateToken signs an HS256 token carrying {id, role}.
func GenerateToken(cfg TokenConfig, id uuid.UUID, role string, now time.Time) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("JWT secret not configured")
	}

	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   id.String(),
		},
		ID:   id,
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// ParseToken parses and validates a JWT token string.
// It rejects tokens not signed with HMAC.
func ParseToken(cfg TokenConfig, tokenStr string) (*models.UserClaims, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.ID == uuid.Nil || claims.Role == "" {
		return nil, errors.New("token is missing id or role")
	}
	return claims, nil
}
