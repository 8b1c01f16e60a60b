package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/identity"
)

// Signer issues short-lived HS256 tokens so background jobs can call sibling
// services on behalf of a user.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner returns nil unless a shared secret is configured.
func NewSigner(cfg config.Auth, ttl time.Duration) *Signer {
	if cfg.JWTSecret == "" {
		return nil
	}
	return &Signer{secret: []byte(cfg.JWTSecret), issuer: cfg.JWTIssuer, ttl: ttl}
}

func (s *Signer) Sign(p identity.Principal) (string, error) {
	now := time.Now()
	claims := Claims{PreferredUsername: p.Username, Email: p.Email}
	claims.RealmAccess.Roles = p.Roles
	claims.Subject = p.UserID
	claims.Issuer = s.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
