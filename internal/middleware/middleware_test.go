package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, sub string, roles []string, exp time.Time) string {
	t.Helper()
	claims := middleware.Claims{PreferredUsername: "alice", Email: "alice@example.com"}
	claims.Subject = sub
	claims.ExpiresAt = jwt.NewNumericDate(exp)
	claims.RealmAccess.Roles = roles

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newRouter(t *testing.T, cfg config.Auth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth, err := middleware.NewAuthenticator(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.Correlation(), auth.Middleware())
	r.GET("/me", func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{
			"user":  p.UserID,
			"token": identity.TokenFromContext(c.Request.Context()) != "",
			"cid":   identity.CorrelationIDFromContext(c.Request.Context()),
		})
	})
	r.GET("/admin", middleware.RequireRole(identity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestMiddleware_ValidToken(t *testing.T) {
	r := newRouter(t, config.Auth{JWTSecret: secret})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", []string{"client"}, time.Now().Add(time.Hour)))
	req.Header.Set(identity.HeaderCorrelationID, "cid-1")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"user-1","token":true,"cid":"cid-1"}`, w.Body.String())
	assert.Equal(t, "cid-1", w.Header().Get(identity.HeaderCorrelationID))
}

func TestMiddleware_RejectsMissingAndExpiredTokens(t *testing.T) {
	r := newRouter(t, config.Auth{JWTSecret: secret})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get(identity.HeaderCorrelationID))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", nil, time.Now().Add(-time.Minute)))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := newRouter(t, config.Auth{JWTSecret: secret})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", []string{"CLIENT"}, time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin-1", []string{"ROLE_ADMIN"}, time.Now().Add(time.Hour)))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMiddleware_DisabledReadsHeaders(t *testing.T) {
	r := newRouter(t, config.Auth{Disabled: true})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(identity.HeaderUserID, "ops")
	req.Header.Set(identity.HeaderRoles, "admin")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNewAuthenticator_RequiresKey(t *testing.T) {
	_, err := middleware.NewAuthenticator(config.Auth{})
	assert.ErrorIs(t, err, middleware.ErrNoKey)
}

func TestSigner_RoundTrip(t *testing.T) {
	cfg := config.Auth{JWTSecret: secret, JWTIssuer: "ebanking"}
	signer := middleware.NewSigner(cfg, time.Minute)
	require.NotNil(t, signer)

	token, err := signer.Sign(identity.Principal{UserID: "user-9", Username: "zoe", Roles: []string{identity.RoleClient}})
	require.NoError(t, err)

	auth, err := middleware.NewAuthenticator(cfg)
	require.NoError(t, err)
	p, err := auth.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", p.UserID)
	assert.Equal(t, "zoe", p.Username)
	assert.True(t, p.HasRole(identity.RoleClient))
}

func TestSigner_NoSecret(t *testing.T) {
	assert.Nil(t, middleware.NewSigner(config.Auth{JWTPublicKey: "pem"}, time.Minute))
}
