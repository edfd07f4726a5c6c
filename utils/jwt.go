package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL applies when Issue is called without a positive lifetime.
const DefaultTokenTTL = 24 * time.Hour

// ErrInvalidToken covers every reason a presented token is rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims defines JWT claims used in the application.
// Subject carries the decimal user id.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID decodes the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// TokenIssuer signs and verifies HS256 session tokens with a server secret.
type TokenIssuer struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenIssuer builds an issuer. A non-positive defaultTTL falls back to DefaultTokenTTL.
func NewTokenIssuer(secret string, defaultTTL time.Duration) *TokenIssuer {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue mints a token bound to userID. ttl <= 0 uses the issuer default.
func (i *TokenIssuer) Issue(userID uint, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = i.defaultTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a token and returns its claims. Any failure yields ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
