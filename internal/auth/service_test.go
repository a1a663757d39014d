package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardiovital/server/internal/config"
	"github.com/cardiovital/server/internal/userctx"
)

func devConfig() *config.Config {
	return &config.Config{
		AuthMode:      "dev",
		AuthRequired:  true,
		JWTSecret:     "test_secret",
		JWTIssuer:     "cardiovital",
		JWTTTLMinutes: 60,
	}
}

func TestSignInDevIssuesVerifiableToken(t *testing.T) {
	service := NewService(devConfig())

	resp, err := service.SignInDev(&DevAuthRequest{UserID: "user-42"})
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	if resp.TokenType != "Bearer" {
		t.Errorf("expected Bearer token type, got %q", resp.TokenType)
	}
	if resp.UserID != "user-42" {
		t.Errorf("expected user-42, got %q", resp.UserID)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected 3600s expiry, got %d", resp.ExpiresIn)
	}

	sub, err := service.VerifyJWT(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if sub != "user-42" {
		t.Errorf("expected subject user-42, got %q", sub)
	}
}

func TestSignInDevDefaultsUserID(t *testing.T) {
	service := NewService(devConfig())

	resp, err := service.SignInDev(&DevAuthRequest{})
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if resp.UserID != "dev-user" {
		t.Errorf("expected dev-user, got %q", resp.UserID)
	}
}

func TestSignInDevDisabled(t *testing.T) {
	cfg := devConfig()
	cfg.AuthMode = "none"
	service := NewService(cfg)

	_, err := service.SignInDev(&DevAuthRequest{})
	if !errors.Is(err, ErrDevAuthDisabled) {
		t.Errorf("expected ErrDevAuthDisabled, got %v", err)
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	service := NewService(devConfig())

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := service.VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewService(devConfig())
	resp, err := issuer.SignInDev(&DevAuthRequest{UserID: "user-42"})
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	other := devConfig()
	other.JWTSecret = "different_secret"
	if _, err := NewService(other).VerifyJWT(resp.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	cfg := devConfig()
	service := NewService(cfg)
	middleware := NewMiddleware(cfg, service)

	var gotUserID string
	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = userctx.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No token is rejected.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/medications", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	// A valid token attaches the subject to the context.
	resp, err := service.SignInDev(&DevAuthRequest{UserID: "user-42"})
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/medications", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", rec.Code)
	}
	if gotUserID != "user-42" {
		t.Errorf("expected context user-42, got %q", gotUserID)
	}

	// Public paths skip the check.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 on public path, got %d", rec.Code)
	}
}

func TestRequireAuthDisabled(t *testing.T) {
	cfg := devConfig()
	cfg.AuthRequired = false
	middleware := NewMiddleware(cfg, NewService(cfg))

	handler := middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/medications", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 when auth disabled, got %d", rec.Code)
	}
}

func TestHandleDevAuth(t *testing.T) {
	handlers := NewHandlers(NewService(devConfig()))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/dev", strings.NewReader(`{"user_id":"user-42"}`))
	rec := httptest.NewRecorder()
	handlers.HandleDevAuth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp DevAuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected a token")
	}
	if resp.UserID != "user-42" {
		t.Errorf("expected user-42, got %q", resp.UserID)
	}

	// Empty body defaults the user.
	req = httptest.NewRequest(http.MethodPost, "/v1/auth/dev", nil)
	rec = httptest.NewRecorder()
	handlers.HandleDevAuth(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on empty body, got %d: %s", rec.Code, rec.Body.String())
	}
}
