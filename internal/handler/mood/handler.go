// Package mood exposes the mood logging and history endpoints.
package mood

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindease/mindease/backend/internal/middleware"
	moodmodel "github.com/mindease/mindease/backend/internal/model/mood"
	moodservice "github.com/mindease/mindease/backend/internal/service/mood"
	"github.com/mindease/mindease/backend/pkg/utils"
)

// Handler serves /api/mood.
type Handler struct {
	moodSvc *moodservice.Service
}

// New creates the mood handler.
func New(moodSvc *moodservice.Service) *Handler {
	return &Handler{moodSvc: moodSvc}
}

// RegisterRoutes mounts the mood endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood/log", h.handleLog)
	r.Get("/mood/history", h.handleHistory)
	r.Get("/mood/latest", h.handleLatest)
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mood    string `json:"mood"`
		Journal string `json:"journal"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Mood data is required")
		return
	}
	if strings.TrimSpace(payload.Mood) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Mood is required")
		return
	}

	m, err := moodmodel.Parse(payload.Mood)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.UserID(r.Context())
	entry, err := h.moodSvc.LogMood(r.Context(), userID, m, payload.Journal)
	if err != nil {
		if errors.Is(err, moodservice.ErrUserRequired) {
			utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		log.Printf("[mood] log failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to log mood")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"id":        entry.ID,
		"mood":      entry.Mood,
		"emoji":     entry.Emoji,
		"journal":   entry.Journal,
		"timestamp": entry.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	history, err := h.moodSvc.History(r.Context(), userID, days)
	if err != nil {
		log.Printf("[mood] history failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to get mood history")
		return
	}

	if history == nil {
		history = []moodmodel.Entry{}
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"mood_logs": history,
		"count":     len(history),
		"userId":    userID,
		"days":      days,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	entry, err := h.moodSvc.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, moodservice.ErrNoMoodLogged) {
			utils.RespondData(w, http.StatusOK, map[string]interface{}{
				"mood": nil,
			})
			return
		}
		log.Printf("[mood] latest failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to get latest mood")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"mood":      entry.Mood,
		"emoji":     entry.Emoji,
		"journal":   entry.Journal,
		"timestamp": entry.CreatedAt.Format(time.RFC3339),
	})
}
