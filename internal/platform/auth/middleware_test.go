package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims *Claims, key []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func sessionClaims(role string) *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
		Name: "Pat Doe",
	}
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, RoleFromContext(c.Request().Context()))
	})
	return rec, handler(c)
}

func TestMiddleware_ValidToken(t *testing.T) {
	tok := signToken(t, sessionClaims(RoleDoctor), testKey)
	rec, err := runMiddleware(t, Middleware(testKey), "Bearer "+tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != RoleDoctor {
		t.Errorf("expected doctor role on context, got %q", rec.Body.String())
	}
}

func TestMiddleware_MissingToken(t *testing.T) {
	_, err := runMiddleware(t, Middleware(testKey), "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_WrongKey(t *testing.T) {
	tok := signToken(t, sessionClaims(RoleDoctor), []byte("other-key"))
	_, err := runMiddleware(t, Middleware(testKey), "Bearer "+tok)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong key, got %v", err)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	claims := sessionClaims(RolePatient)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	tok := signToken(t, claims, testKey)
	_, err := runMiddleware(t, Middleware(testKey), "Bearer "+tok)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestMiddleware_RoleRequired(t *testing.T) {
	tok := signToken(t, sessionClaims(""), testKey)
	_, err := runMiddleware(t, Middleware(testKey), "Bearer "+tok)
	if err == nil {
		t.Fatal("expected error for token without role")
	}
}

func TestMiddleware_BadScheme(t *testing.T) {
	_, err := runMiddleware(t, Middleware(testKey), "Basic abc123")
	if err == nil {
		t.Fatal("expected error for non-bearer scheme")
	}
}

func TestDevMiddleware_NoTokenRunsAsAdmin(t *testing.T) {
	rec, err := runMiddleware(t, DevMiddleware(testKey), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != RoleAdmin {
		t.Errorf("expected admin dev session, got %q", rec.Body.String())
	}
}

func TestDevMiddleware_TokenStillValidated(t *testing.T) {
	tok := signToken(t, sessionClaims(RolePatient), []byte("other-key"))
	_, err := runMiddleware(t, DevMiddleware(testKey), "Bearer "+tok)
	if err == nil {
		t.Fatal("expected bad token to be rejected even in dev mode")
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role    string
		allowed []string
		wantOK  bool
	}{
		{RoleDoctor, []string{RoleDoctor, RolePatient}, true},
		{RolePatient, []string{RoleDoctor}, false},
		{RoleAdmin, []string{RoleDoctor}, true},
		{"", []string{RoleDoctor}, false},
	}
	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithSession(req.Context(), "u", "n", tc.role, ""))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := RequireRole(tc.allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		err := handler(c)
		if tc.wantOK && err != nil {
			t.Errorf("role %q with allowed %v: unexpected error %v", tc.role, tc.allowed, err)
		}
		if !tc.wantOK {
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusForbidden {
				t.Errorf("role %q with allowed %v: expected 403, got %v", tc.role, tc.allowed, err)
			}
		}
	}
}

func TestTokenFromContext_RoundTrip(t *testing.T) {
	ctx := WithToken(context.Background(), "abc")
	if TokenFromContext(ctx) != "abc" {
		t.Error("token did not round-trip through context")
	}
}
