package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/camila-fonseca/aroma-atelier/internal/auth"
	"github.com/camila-fonseca/aroma-atelier/internal/models"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
)

func issueTokenPair(w http.ResponseWriter, status int, user models.User) {
	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	resp := TokenResponse{
		AccessToken:  token,
		RefreshToken: auth.IssueRefreshToken(user.Username),
	}
	if err := writeJSON(w, status, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RegisterHandler godoc
// @Summary Register new user and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "username and password"
// @Success 201 {object} TokenResponse
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCredentials(creds.Username, creds.Password)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     creds.Username,
		PasswordHash: string(hashed),
		Role:         "user",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	created, err := userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	issueTokenPair(w, http.StatusCreated, created)
}

// LoginHandler godoc
// @Summary Authenticate user and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "username and password"
// @Success 200 {object} TokenResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	issueTokenPair(w, http.StatusOK, user)
}

// RefreshHandler godoc
// @Summary Exchange a refresh token for a new token pair
// @Description Refresh tokens are single use; the presented token is invalidated
// @Tags auth
// @Accept json
// @Produce json
// @Param token body RefreshRequest true "refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	username, err := auth.RedeemRefreshToken(req.RefreshToken)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByUsername(username)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	issueTokenPair(w, http.StatusOK, user)
}
