package identity

import "context"

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"

	HeaderUserID        = "X-User-ID"
	HeaderRoles         = "X-User-Roles"
	HeaderCorrelationID = "X-Correlation-ID"
)

type ctxKey int

const (
	tokenKey ctxKey = iota
	correlationKey
	principalKey
)

// Principal is the authenticated caller.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Roles    []string
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// CanAccess reports whether the caller may read or change data owned by userID.
func (p Principal) CanAccess(userID string) bool {
	return p.UserID == userID || p.IsAdmin()
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the raw bearer token of the inbound request.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey).(string)
	return id
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
