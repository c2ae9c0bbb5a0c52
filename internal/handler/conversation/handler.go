// Package conversation exposes the persistent conversation endpoints.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindease/mindease/backend/internal/middleware"
	"github.com/mindease/mindease/backend/internal/model/chat"
	chatservice "github.com/mindease/mindease/backend/internal/service/chat"
	moodservice "github.com/mindease/mindease/backend/internal/service/mood"
	"github.com/mindease/mindease/backend/pkg/utils"
)

const maxMessageLen = 1000

// Responder generates the assistant's reply for a conversation turn.
type Responder interface {
	GenerateResponse(ctx context.Context, history []chat.Message, userMessage, latestMood string) (string, error)
}

// Handler serves /api/conversations.
type Handler struct {
	chatSvc   *chatservice.Service
	moodSvc   *moodservice.Service
	responder Responder
}

// New creates the conversation handler. responder may be nil when no model
// is configured.
func New(chatSvc *chatservice.Service, moodSvc *moodservice.Service, responder Responder) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		moodSvc:   moodSvc,
		responder: responder,
	}
}

// RegisterRoutes mounts the conversation endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/conversations", h.handleList)
	r.Post("/conversations", h.handleCreate)
	r.Get("/conversations/{conversationID}", h.handleGet)
	r.Delete("/conversations/{conversationID}", h.handleDelete)
	r.Post("/conversations/{conversationID}/messages", h.handleSendMessage)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	conversations, err := h.chatSvc.ListConversations(r.Context(), userID, limit)
	if err != nil {
		log.Printf("[conversation] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to get conversations")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"conversations": conversations,
		"count":         len(conversations),
		"userId":        userID,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title string `json:"title"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Data is required")
		return
	}

	userID := middleware.UserID(r.Context())
	conv, err := h.chatSvc.CreateConversation(r.Context(), userID, strings.TrimSpace(payload.Title))
	if err != nil {
		log.Printf("[conversation] create failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to create conversation")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"conversation_id": conv.ID,
		"userId":          userID,
		"timestamp":       conv.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	userID := middleware.UserID(r.Context())

	conv, messages, err := h.chatSvc.GetConversation(r.Context(), conversationID, userID)
	if err != nil {
		if errors.Is(err, chatservice.ErrConversationNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Conversation not found or access denied",
				"You can only access your own conversations")
			return
		}
		log.Printf("[conversation] get failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to get conversation")
		return
	}

	if messages == nil {
		messages = []chat.Message{}
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"id":         conv.ID,
		"title":      conv.Title,
		"updated_at": conv.UpdatedAt.Format(time.RFC3339),
		"messages":   messages,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	userID := middleware.UserID(r.Context())

	if err := h.chatSvc.DeleteConversation(r.Context(), conversationID, userID); err != nil {
		if errors.Is(err, chatservice.ErrConversationNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Failed to delete conversation",
				"Conversation not found or access denied")
			return
		}
		log.Printf("[conversation] delete failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to delete conversation")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"conversation_id": conversationID,
		"message":         "Conversation deleted successfully",
	})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	userID := middleware.UserID(r.Context())

	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" || len(message) > maxMessageLen {
		utils.RespondError(w, http.StatusBadRequest,
			fmt.Sprintf("Message must be between 1 and %d characters", maxMessageLen))
		return
	}

	_, history, err := h.chatSvc.GetConversation(r.Context(), conversationID, userID)
	if err != nil {
		if errors.Is(err, chatservice.ErrConversationNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Conversation not found or access denied",
				"You can only access your own conversations")
			return
		}
		log.Printf("[conversation] history load failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to add message to conversation")
		return
	}

	if h.responder == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "AI service unavailable")
		return
	}

	// The latest logged mood rides along so the model stops re-asking for it.
	latestMood := ""
	if entry, err := h.moodSvc.Latest(r.Context(), userID); err == nil {
		latestMood = string(entry.Mood)
	}

	reply, err := h.responder.GenerateResponse(r.Context(), history, message, latestMood)
	if err != nil {
		log.Printf("[conversation] generate failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	if err := h.chatSvc.AppendExchange(r.Context(), conversationID, message, reply); err != nil {
		log.Printf("[conversation] append failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error", "Failed to add message to conversation")
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"message":         reply,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"conversation_id": conversationID,
		"userId":          userID,
	})
}
