package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/camila-fonseca/aroma-atelier/internal/http"
	handler "github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
	rl "github.com/camila-fonseca/aroma-atelier/internal/http/rate_limiter"
)

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter(false)

	rl.CleanupAllVisitors()
	w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{
		Username: "camila",
		Password: "strong-enough",
	}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var tokens handler.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&tokens); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Errorf("expected both tokens in the response, got %+v", tokens)
	}

	// Registering the same username again conflicts.
	rl.CleanupAllVisitors()
	w = doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{
		Username: "camila",
		Password: "strong-enough",
	}, false)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", w.Code)
	}
}

func TestRegisterHandler_WeakCredentials(t *testing.T) {
	r := api.NewRouter(false)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "strong-enough"},
		{"short password", "valid-user", "12345"},
		{"invalid characters", "no spaces!", "strong-enough"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl.CleanupAllVisitors()
			w := doJSON(r, http.MethodPost, "/register", handler.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			}, false)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter(false)

	rl.CleanupAllVisitors()
	w := doJSON(r, http.MethodPost, "/login", handler.LoginRequest{
		Username: "admin",
		Password: "not-the-password",
	}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestRefreshHandler_SingleUse(t *testing.T) {
	r := api.NewRouter(false)

	rl.CleanupAllVisitors()
	w := doJSON(r, http.MethodPost, "/login", handler.LoginRequest{
		Username: "admin",
		Password: "secret-pw",
	}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d", w.Code)
	}
	var tokens handler.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&tokens); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	rl.CleanupAllVisitors()
	w = doJSON(r, http.MethodPost, "/refresh", handler.RefreshRequest{RefreshToken: tokens.RefreshToken}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for valid refresh token, got %d: %s", w.Code, w.Body.String())
	}
	var renewed handler.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&renewed); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if renewed.AccessToken == "" || renewed.RefreshToken == "" {
		t.Errorf("expected a fresh token pair, got %+v", renewed)
	}

	// The redeemed token is gone.
	rl.CleanupAllVisitors()
	w = doJSON(r, http.MethodPost, "/refresh", handler.RefreshRequest{RefreshToken: tokens.RefreshToken}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for reused refresh token, got %d", w.Code)
	}
}

func TestAuthEndpointsAreRateLimited(t *testing.T) {
	r := api.NewRouter(false)

	rl.CleanupAllVisitors()
	var lastCode int
	for i := 0; i < 10; i++ {
		w := doJSON(r, http.MethodPost, "/login", handler.LoginRequest{
			Username: "admin",
			Password: "not-the-password",
		}, false)
		lastCode = w.Code
	}
	if lastCode != http.StatusTooManyRequests {
		t.Errorf("expected 429 after hammering /login, got %d", lastCode)
	}
	rl.CleanupAllVisitors()
}
