package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/camila-fonseca/aroma-atelier/internal/ai"
)

// AssistantHandler godoc
// @Summary Ask the production assistant
// @Description Forwards the question to the language model configured for the workshop and returns its reply
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body AssistantRequest true "Question for the assistant"
// @Success 200 {object} AssistantResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 503 {string} string "Assistant unavailable"
// @Router /assistant [post]
func AssistantHandler(w http.ResponseWriter, r *http.Request) {
	var req AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply, err := assistant.Complete(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			http.Error(w, "assistant is not configured", http.StatusServiceUnavailable)
			return
		}
		log.Printf("assistant request failed: %v", err)
		http.Error(w, "assistant is unavailable, try again later", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, AssistantResponse{Reply: reply})
}
