// Package auth carries the portal session: who the caller is, which
// role they hold, and the bearer token that gets forwarded to the
// upstream backend. Session state travels on the request context only;
// nothing in the codebase reads it from ambient storage.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Portal roles. Admin implies every other role.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userNameKey contextKey = "user_name"
	roleKey     contextKey = "role"
	tokenKey    contextKey = "token"
)

// Claims is the portal session token payload.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
	Name string `json:"name"`
}

// WithSession returns a context carrying the authenticated session.
func WithSession(ctx context.Context, userID, name, role, token string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, userNameKey, name)
	ctx = context.WithValue(ctx, roleKey, role)
	ctx = context.WithValue(ctx, tokenKey, token)
	return ctx
}

// WithToken returns a context carrying only a bearer token, for callers
// that talk upstream outside a request (e.g. the analytics fallback
// warm-up in tests).
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey).(string)
	return uid
}

func NameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// TokenFromContext returns the raw bearer token for upstream forwarding.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}
