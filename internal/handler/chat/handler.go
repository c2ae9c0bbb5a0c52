// Package chat exposes the stateless chat and mood-analysis endpoints.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	analysis "github.com/mindease/mindease/backend/internal/analysis/mood"
	"github.com/mindease/mindease/backend/internal/middleware"
	"github.com/mindease/mindease/backend/internal/model/chat"
	"github.com/mindease/mindease/backend/internal/service/ai"
	"github.com/mindease/mindease/backend/pkg/utils"
)

const (
	maxMessageLen = 1000
	maxAnalyzeLen = 2000
)

// Responder generates chat replies and mood classifications.
type Responder interface {
	GenerateResponse(ctx context.Context, history []chat.Message, userMessage, latestMood string) (string, error)
	AnalyzeMood(ctx context.Context, text string) (analysis.Analysis, error)
}

// Handler serves /api/chat.
type Handler struct {
	responder Responder
}

// New creates the chat handler. responder may be nil when no model is
// configured; endpoints degrade the way the hosted deployment does.
func New(responder Responder) *Handler {
	return &Handler{responder: responder}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/message", h.handleMessage)
	r.Post("/chat/analyze-mood", h.handleAnalyzeMood)
	r.Get("/chat/conversation-starter", h.handleConversationStarter)
	r.Get("/chat/health", h.handleHealth)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		UserID    string `json:"userId"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" || len(message) > maxMessageLen {
		utils.RespondError(w, http.StatusBadRequest, "Validation failed",
			fmt.Sprintf("Message must be between 1 and %d characters", maxMessageLen))
		return
	}

	if h.responder == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "AI service unavailable")
		return
	}

	reply, err := h.responder.GenerateResponse(r.Context(), nil, message, "")
	if err != nil {
		log.Printf("[chat] generate failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session_%d", time.Now().UnixMilli())
	}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		userID = payload.UserID
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"message":   reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"sessionId": sessionID,
		"userId":    userID,
	})
}

func (h *Handler) handleAnalyzeMood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" || len(text) > maxAnalyzeLen {
		utils.RespondError(w, http.StatusBadRequest, "Validation failed",
			fmt.Sprintf("Text must be between 1 and %d characters", maxAnalyzeLen))
		return
	}

	result, err := h.analyze(r.Context(), text)
	if err != nil {
		var malformed *ai.MalformedAnalysisError
		if errors.As(err, &malformed) {
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success":     false,
				"error":       "Failed to parse mood analysis response",
				"rawResponse": malformed.Raw,
			})
			return
		}
		log.Printf("[chat] mood analysis failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to analyze mood")
		return
	}

	utils.RespondData(w, http.StatusOK, result)
}

// analyze prefers the model and falls back to the keyword heuristic when no
// model is configured.
func (h *Handler) analyze(ctx context.Context, text string) (analysis.Analysis, error) {
	if h.responder == nil {
		return analysis.Analyze(text), nil
	}
	return h.responder.AnalyzeMood(ctx, text)
}

var starters = []string{
	"How are you feeling today?",
	"What's been on your mind lately?",
	"Is there anything you'd like to talk about?",
	"How has your day been so far?",
	"What's something that made you smile today?",
	"Is there anything you're looking forward to?",
	"How are you taking care of yourself today?",
	"What's something you're grateful for right now?",
}

func (h *Handler) handleConversationStarter(w http.ResponseWriter, r *http.Request) {
	starter := starters[rand.Intn(len(starters))]

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"message":   starter,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"service":   "Mind-Ease Chat Service",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"features": []string{
			"Mental wellness conversations",
			"Mood analysis",
			"Emotional support",
			"Crisis awareness",
		},
	})
}
