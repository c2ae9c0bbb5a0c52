package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mindease/mindease/backend/internal/middleware"
	chatservice "github.com/mindease/mindease/backend/internal/service/chat"
	"github.com/mindease/mindease/backend/internal/store"
)

type stubVerifier struct {
	id string
}

func (v stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	return v.id, nil
}

func setupChatService(t *testing.T) *chatservice.Service {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return chatservice.NewService(st)
}

func TestServeSSERequiresMessage(t *testing.T) {
	handler := New(nil, setupChatService(t))

	req := httptest.NewRequest(http.MethodGet, "/stream/conv-1", nil)
	resp := httptest.NewRecorder()
	handler.ServeSSE(resp, req, "conv-1")

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestHandleStreamRequestUnknownConversation(t *testing.T) {
	handler := New(nil, setupChatService(t))

	resp := httptest.NewRecorder()
	err := handler.HandleStreamRequest(context.Background(), resp, "missing", "hello", "user-1")
	if err == nil {
		t.Fatal("expected error for unknown conversation")
	}
	if !strings.Contains(resp.Body.String(), `"event":"error"`) {
		t.Fatalf("expected SSE error event, got %s", resp.Body.String())
	}
}

func TestWebSocketRejectsForeignConversation(t *testing.T) {
	chatSvc := setupChatService(t)
	conv, err := chatSvc.CreateConversation(context.Background(), "owner", "Private")
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	wsHandler := NewWebSocketHandler(New(nil, chatSvc))
	r := chi.NewRouter()
	r.Use(middleware.RequireAuth(stubVerifier{id: "intruder"}))
	wsHandler.RegisterWebSocketRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/ws/chat/"+conv.ID, nil)
	req.Header.Set("Authorization", "Bearer test-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before upgrade, got %d", resp.Code)
	}
}
