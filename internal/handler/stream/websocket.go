package stream

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/mindease/mindease/backend/internal/middleware"
	chatservice "github.com/mindease/mindease/backend/internal/service/chat"
)

// WebSocketHandler runs a bidirectional chat channel over one conversation.
type WebSocketHandler struct {
	handler  *Handler
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket chat handler.
func NewWebSocketHandler(handler *Handler) *WebSocketHandler {
	return &WebSocketHandler{
		handler: handler,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/chat/{conversationID}", h.handleWebSocket)
}

type inboundMessage struct {
	Message string `json:"message"`
}

type outboundMessage struct {
	Event     string `json:"event"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	userID := middleware.UserID(r.Context())

	// Ownership check before upgrading; a foreign conversation never opens.
	if _, _, err := h.handler.chatSvc.GetConversation(r.Context(), conversationID, userID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatservice.ErrConversationNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] chat channel opened for conversation=%s", conversationID)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}
		if inbound.Message == "" {
			h.writeError(conn, "message is required")
			continue
		}

		_, history, err := h.handler.chatSvc.GetConversation(r.Context(), conversationID, userID)
		if err != nil {
			h.writeError(conn, "failed to load conversation")
			continue
		}

		reply, err := h.handler.aiSvc.GenerateResponse(r.Context(), history, inbound.Message, "")
		if err != nil {
			log.Printf("[ws] generate failed: %v", err)
			h.writeError(conn, "failed to generate response")
			continue
		}

		if err := h.handler.chatSvc.AppendExchange(r.Context(), conversationID, inbound.Message, reply); err != nil {
			log.Printf("[ws] failed to persist exchange: %v", err)
		}

		if err := conn.WriteJSON(outboundMessage{
			Event:     "message",
			Message:   reply,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			log.Printf("[ws] write failed: %v", err)
			return
		}
	}
}

func (h *WebSocketHandler) writeError(conn *websocket.Conn, msg string) {
	if err := conn.WriteJSON(outboundMessage{
		Event:     "error",
		Error:     msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}
