package notify

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultTokenTTL is the lifetime of a webhook delivery token.
const DefaultTokenTTL = 2 * time.Minute

// ErrSecretTooShort indicates the signing secret is under 32 bytes.
var ErrSecretTooShort = errors.New("webhook signing secret must be at least 32 bytes")

// TokenSource mints short-lived HS256 bearer tokens, one per webhook
// delivery, so receivers can authenticate the sender without a shared
// static header.
type TokenSource struct {
	// Secret is the HMAC signing key (must be at least 32 bytes).
	Secret []byte

	// Issuer is the token issuer (e.g. "buildkeep").
	Issuer string

	// TTL is the token lifetime. Defaults to DefaultTokenTTL if zero.
	TTL time.Duration
}

func (s *TokenSource) ttl() time.Duration {
	if s.TTL == 0 {
		return DefaultTokenTTL
	}
	return s.TTL
}

// Mint creates a signed token with the given subject (typically the build
// ID the delivery is about).
func (s *TokenSource) Mint(subject string) (string, error) {
	if len(s.Secret) < 32 {
		return "", ErrSecretTooShort
	}

	tokenID, err := nanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate token ID: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		ID:        tokenID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a minted token and returns its subject. Used by tests and
// by receivers written in Go.
func (s *TokenSource) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
