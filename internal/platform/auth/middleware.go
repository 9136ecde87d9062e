package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Middleware validates the portal session token and places the session
// on the request context. Requests without a usable session get 401 and
// the sign-in hint; no upstream fetch is attempted for them.
func Middleware(signingKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			tokenStr := parts[1]
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return signingKey, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}
			if claims.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "session has no role")
			}

			ctx := WithSession(c.Request().Context(), claims.Subject, claims.Name, claims.Role, tokenStr)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// DevMiddleware is a permissive middleware for development: requests
// without a token run as an admin dev user, requests with one are
// validated normally.
func DevMiddleware(signingKey []byte) echo.MiddlewareFunc {
	validate := Middleware(signingKey)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		validated := validate(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				ctx := WithSession(c.Request().Context(), "dev-user", "Dev User", RoleAdmin, "")
				c.SetRequest(c.Request().WithContext(ctx))
				return next(c)
			}
			return validated(c)
		}
	}
}
