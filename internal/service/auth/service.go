// Package auth provides the credential primitives used by the API: signed
// bearer tokens and password hashing. It is framework-agnostic.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"news-explorer/internal/domain/entity"
)

// DefaultTokenTTL is the lifetime of an issued token. There is no refresh.
const DefaultTokenTTL = 7 * 24 * time.Hour

// MinSecretLength is the minimum JWT secret length (256 bits).
const MinSecretLength = 32

// ErrInvalidToken is returned for any token that cannot be trusted. The cause
// (missing, malformed, expired, bad signature) is wrapped for logging only.
var ErrInvalidToken = errors.New("invalid token")

var weakSecrets = []string{"secret", "password", "test", "admin", "default"}

// ValidateSecret checks the signing secret against the minimum requirements.
func ValidateSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(secret) < MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinSecretLength)
	}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			return errors.New("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}

// TokenService issues and verifies HS256 tokens whose subject is a user ID.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service. A non-positive ttl selects DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the service that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for userID.
func (s *TokenService) Issue(userID string) (string, error) {
	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the subject user ID.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !entity.IsObjectID(claims.Subject) {
		return "", fmt.Errorf("%w: invalid sub claim", ErrInvalidToken)
	}
	return claims.Subject, nil
}
