package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptyIdentity is returned when a token is requested for nothing.
	ErrEmptyIdentity = errors.New("identity payload is required")
	// ErrInvalidToken covers every verification failure: bad signature,
	// malformed token, expired token.
	ErrInvalidToken = errors.New("invalid token")
)

// Service signs and verifies HS256 bearer tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New creates a token service with the fixed 1-hour expiry.
func New(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: time.Hour}
}

// Issue signs the identity payload into a token that expires after the
// service TTL. The payload is copied so callers can reuse their map.
func (s *Service) Issue(identity map[string]any) (string, error) {
	if len(identity) == 0 {
		return "", ErrEmptyIdentity
	}

	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(s.ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the original claims.
func (s *Service) Verify(raw string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
