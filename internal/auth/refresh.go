package auth

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

const refreshTokenFile = "refresh_tokens.json"

type refreshEntry struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

var (
	refreshTokenStore = map[string]refreshEntry{}
	mu                sync.Mutex
)

// IssueRefreshToken creates a long-lived opaque token for the user and
// persists the store.
func IssueRefreshToken(username string) string {
	token := uuid.NewString()
	mu.Lock()
	loadIfEmpty()
	refreshTokenStore[token] = refreshEntry{
		Username:  username,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	saveRefreshTokens()
	mu.Unlock()
	return token
}

// RedeemRefreshToken exchanges a refresh token for the username it was
// issued to. The token is single use.
func RedeemRefreshToken(token string) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	loadIfEmpty()

	entry, ok := refreshTokenStore[token]
	if !ok {
		return "", errors.New("unknown refresh token")
	}
	if time.Now().After(entry.ExpiresAt) {
		delete(refreshTokenStore, token)
		saveRefreshTokens()
		return "", errors.New("refresh token expired")
	}

	delete(refreshTokenStore, token)
	saveRefreshTokens()
	return entry.Username, nil
}

// StartRefreshTokenCleaner periodically drops expired refresh tokens.
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		loadIfEmpty()
		changed := false
		for token, entry := range refreshTokenStore {
			if time.Now().After(entry.ExpiresAt) {
				delete(refreshTokenStore, token)
				changed = true
			}
		}
		if changed {
			saveRefreshTokens()
		}
		mu.Unlock()
	}
}

func loadIfEmpty() {
	if len(refreshTokenStore) > 0 {
		return
	}
	data, err := os.ReadFile(refreshTokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("Error loading refresh token file:", err)
		}
		return
	}
	if err := json.Unmarshal(data, &refreshTokenStore); err != nil {
		log.Println("Error parsing refresh token file:", err)
		refreshTokenStore = map[string]refreshEntry{}
	}
}

func saveRefreshTokens() {
	data, err := json.MarshalIndent(refreshTokenStore, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(refreshTokenFile, data, 0600); err != nil {
		log.Println("Error saving refresh token file:", err)
	}
}
