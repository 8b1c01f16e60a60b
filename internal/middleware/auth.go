package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/identity"
)

var ErrNoKey = errors.New("auth: JWT_SECRET or JWT_PUBLIC_KEY is required")

// Claims follows the Keycloak access token layout.
type Claims struct {
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	keyFunc  jwt.Keyfunc
	methods  []string
	issuer   string
	disabled bool
}

// NewAuthenticator builds an RS256 verifier when a PEM public key is configured,
// HS256 otherwise. With AUTH_DISABLED the caller is read from X-User-ID and
// X-User-Roles headers.
func NewAuthenticator(cfg config.Auth) (*Authenticator, error) {
	a := &Authenticator{issuer: cfg.JWTIssuer, disabled: cfg.Disabled}
	if cfg.Disabled {
		return a, nil
	}

	switch {
	case cfg.JWTPublicKey != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey))
		if err != nil {
			return nil, fmt.Errorf("auth: parse public key: %w", err)
		}
		a.keyFunc = func(*jwt.Token) (interface{}, error) { return key, nil }
		a.methods = []string{jwt.SigningMethodRS256.Alg()}
	case cfg.JWTSecret != "":
		secret := []byte(cfg.JWTSecret)
		a.keyFunc = func(*jwt.Token) (interface{}, error) { return secret, nil }
		a.methods = []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, ErrNoKey
	}
	return a, nil
}

// Parse validates a raw token and returns the caller it describes.
func (a *Authenticator) Parse(raw string) (identity.Principal, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods(a.methods), jwt.WithExpirationRequired()}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, a.keyFunc, opts...)
	if err != nil {
		return identity.Principal{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return identity.Principal{}, errors.New("invalid token")
	}

	return identity.Principal{
		UserID:   claims.Subject,
		Username: claims.PreferredUsername,
		Email:    claims.Email,
		Roles:    normalizeRoles(claims.RealmAccess.Roles),
	}, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller and the raw token on the request context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.disabled {
			userID := c.GetHeader(identity.HeaderUserID)
			if userID == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + identity.HeaderUserID})
				return
			}
			setPrincipal(c, identity.Principal{
				UserID:   userID,
				Username: userID,
				Roles:    normalizeRoles(strings.Split(c.GetHeader(identity.HeaderRoles), ",")),
			}, "")
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		principal, err := a.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		setPrincipal(c, principal, raw)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the caller holds role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok || !p.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the caller set by Middleware.
func CurrentPrincipal(c *gin.Context) (identity.Principal, bool) {
	return identity.PrincipalFromContext(c.Request.Context())
}

func setPrincipal(c *gin.Context, p identity.Principal, raw string) {
	ctx := identity.WithPrincipal(c.Request.Context(), p)
	if raw != "" {
		ctx = identity.WithToken(ctx, raw)
	}
	c.Request = c.Request.WithContext(ctx)
}

func normalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(r), "ROLE_"))
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
