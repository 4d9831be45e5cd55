package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cocina/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signTestToken(t *testing.T, roles []string) string {
	t.Helper()
	claims := &Claims{
		UserID: "u1234567890",
		Role:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// WebSocket upgrades carry no Authorization header from the tablet, so
// Authenticate must pass them through untouched.
func TestAuthenticatePassesWebSocketUpgrade(t *testing.T) {
	called := false
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/ws/sync", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	if !called {
		t.Fatal("expected the upgrade request to reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run without a token")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/unlock", nil)
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateSetsUserID(t *testing.T) {
	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/unlock", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, []string{"viewer"}))
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	if gotUserID != "u1234567890" {
		t.Fatalf("expected user id from the token, got %q", gotUserID)
	}
}

func TestRequireAdminRejectsViewer(t *testing.T) {
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("viewer token must not reach an admin route")
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/r1", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, []string{"viewer"}))
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	called := false
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/r1", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, []string{"viewer", "admin"}))
	rec := httptest.NewRecorder()

	handler(rec, req, nil)

	if !called {
		t.Fatal("expected the admin token to reach the handler")
	}
}
