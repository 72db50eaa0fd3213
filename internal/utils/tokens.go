package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
)

// ErrInvalidToken covers every way a presented token can be unusable:
// bad signature, expired, revoked, or the wrong kind.
var ErrInvalidToken = errors.New("invalid token")

const refreshKeyPrefix = "refresh:"

// AccessClaims is what the access token carries.
type AccessClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenPair is the login/refresh response body.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// TokenManager signs and verifies the JWT pair. Refresh tokens are stored in
// Redis and rotated on every use; without Redis (dev setups) refresh falls
// back to signature-and-expiry checks only, losing revocation.
type TokenManager struct {
	secret     []byte
	redis      *redis.Client
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, rdb *redis.Client, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		redis:      rdb,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// CreateTokenPair issues a fresh access+refresh pair for the user and
// registers the refresh token as valid.
func (m *TokenManager) CreateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refreshClaims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
		ID:        fmt.Sprintf("%d", now.UnixNano()),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	if m.redis != nil {
		// Small grace past the JWT expiry so the store never outlives the token.
		if err := m.redis.Set(ctx, refreshKeyPrefix+refresh, userID, m.refreshTTL+5*time.Minute).Err(); err != nil {
			return nil, fmt.Errorf("storing refresh token: %w", err)
		}
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess parses and validates an access token, returning its claims.
func (m *TokenManager) VerifyAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, m.keyFunc)
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Refresh exchanges a valid refresh token for a new pair. The presented
// token is revoked first, so each refresh token works exactly once.
func (m *TokenManager) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(refreshToken, claims, m.keyFunc)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	if m.redis != nil {
		key := refreshKeyPrefix + refreshToken
		stored, err := m.redis.Get(ctx, key).Result()
		if err == redis.Nil || (err == nil && stored != claims.Subject) {
			return nil, ErrInvalidToken
		}
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("checking refresh token: %w", err)
		}
		if err := m.redis.Del(ctx, key).Err(); err != nil {
			return nil, fmt.Errorf("revoking refresh token: %w", err)
		}
	}

	return m.CreateTokenPair(ctx, claims.Subject)
}

func (m *TokenManager) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return m.secret, nil
}
