package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenCodec issues and verifies session tokens. A token carries only the
// subject id and an expiry; roles are derived from the store per request, so
// nothing embedded in the token is ever trusted for authorization.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec signing HS256 tokens valid for ttl.
// A non-positive ttl falls back to 7 days.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a bearer token for the given subject, valid from now for the
// configured window.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the subject id. Every failure
// mode (malformed, forged, expired, missing subject) collapses into
// domain.ErrInvalidToken so callers cannot leak the reason.
func (c *TokenCodec) Verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
