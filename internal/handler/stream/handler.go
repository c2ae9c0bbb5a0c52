// Package stream delivers AI replies over SSE and websocket transports.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/mindease/mindease/backend/internal/middleware"
	aiservice "github.com/mindease/mindease/backend/internal/service/ai"
	chatservice "github.com/mindease/mindease/backend/internal/service/chat"
	"github.com/mindease/mindease/backend/pkg/utils"
)

// Handler manages streamed AI responses for persistent conversations.
type Handler struct {
	aiSvc   *aiservice.Service
	chatSvc *chatservice.Service
}

// New creates the stream handler.
func New(aiSvc *aiservice.Service, chatSvc *chatservice.Service) *Handler {
	return &Handler{aiSvc: aiSvc, chatSvc: chatSvc}
}

// Response is a single streaming frame.
type Response struct {
	Event          string `json:"event"`
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	Finished       bool   `json:"finished,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HandleStreamRequest streams the reply to one user message over SSE and
// persists the completed exchange.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, conversationID, userMessage, userID string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	_, history, err := h.chatSvc.GetConversation(ctx, conversationID, userID)
	if err != nil {
		h.sendError(w, flusher, fmt.Sprintf("failed to load conversation: %v", err))
		return err
	}

	utils.SendSSEChunk(w, flusher, Response{
		Event:          "start",
		ConversationID: conversationID,
	})

	stream, err := h.aiSvc.StreamResponse(ctx, history, userMessage, "")
	if err != nil {
		h.sendError(w, flusher, fmt.Sprintf("AI generation failed: %v", err))
		return err
	}
	defer stream.Close()

	var full strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.sendError(w, flusher, fmt.Sprintf("AI stream failed: %v", err))
			return err
		}
		if chunk.Content == "" {
			continue
		}
		full.WriteString(chunk.Content)
		utils.SendSSEChunk(w, flusher, Response{
			Event:          "chunk",
			Content:        chunk.Content,
			ConversationID: conversationID,
		})
	}

	if err := h.chatSvc.AppendExchange(ctx, conversationID, userMessage, full.String()); err != nil {
		log.Printf("[stream] failed to persist exchange: %v", err)
	}

	utils.SendSSEChunk(w, flusher, Response{
		Event:          "complete",
		ConversationID: conversationID,
		Finished:       true,
	})
	return nil
}

func (h *Handler) sendError(w http.ResponseWriter, flusher http.Flusher, msg string) {
	utils.SendSSEChunk(w, flusher, Response{Event: "error", Error: msg})
}

// ServeSSE is the chi endpoint wrapper around HandleStreamRequest.
func (h *Handler) ServeSSE(w http.ResponseWriter, r *http.Request, conversationID string) {
	userMessage := r.URL.Query().Get("message")
	if userMessage == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	userID := middleware.UserID(r.Context())
	if err := h.HandleStreamRequest(r.Context(), w, conversationID, userMessage, userID); err != nil {
		log.Printf("[stream] error handling request: %v", err)
	}
}
