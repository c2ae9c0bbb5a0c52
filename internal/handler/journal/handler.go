// Package journal exposes the journal entry endpoints.
package journal

import (
	"encoding/json"
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

const maxJournalLen = 5000

// Handler serves /api/journals.
type Handler struct {
	moodSvc *moodservice.Service
}

// New creates the journal handler.
func New(moodSvc *moodservice.Service) *Handler {
	return &Handler{moodSvc: moodSvc}
}

// RegisterRoutes mounts the journal endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/journals", h.handleCreate)
	r.Get("/journals", h.handleList)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" || len(text) > maxJournalLen {
		utils.RespondError(w, http.StatusBadRequest, "Text is required")
		return
	}

	userID := middleware.UserID(r.Context())
	entry, err := h.moodSvc.AddJournal(r.Context(), userID, text)
	if err != nil {
		log.Printf("[journal] create failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to save journal entry")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"id":        entry.ID,
		"text":      entry.Text,
		"timestamp": entry.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.moodSvc.ListJournals(r.Context(), userID, limit)
	if err != nil {
		log.Printf("[journal] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to get journal entries")
		return
	}

	if entries == nil {
		entries = []moodmodel.JournalEntry{}
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"journals":  entries,
		"count":     len(entries),
		"userId":    userID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
