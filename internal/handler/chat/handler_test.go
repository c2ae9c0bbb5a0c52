package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	analysis "github.com/mindease/mindease/backend/internal/analysis/mood"
	"github.com/mindease/mindease/backend/internal/model/chat"
	"github.com/mindease/mindease/backend/internal/service/ai"
)

type stubResponder struct {
	reply       string
	analysisErr error
}

func (s stubResponder) GenerateResponse(ctx context.Context, history []chat.Message, userMessage, latestMood string) (string, error) {
	return s.reply, nil
}

func (s stubResponder) AnalyzeMood(ctx context.Context, text string) (analysis.Analysis, error) {
	if s.analysisErr != nil {
		return analysis.Analysis{}, s.analysisErr
	}
	return analysis.Analyze(text), nil
}

func setupRouter(responder Responder) *chi.Mux {
	r := chi.NewRouter()
	New(responder).RegisterRoutes(r)
	return r
}

func postJSON(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", resp.Body.String())
	}
	return env.Data
}

func TestChatMessageWithResponder(t *testing.T) {
	r := setupRouter(stubResponder{reply: "I'm here for you."})

	resp := postJSON(r, "/chat/message", map[string]string{"message": "hello", "userId": "anonymous"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["message"] != "I'm here for you." {
		t.Fatalf("unexpected reply %v", data["message"])
	}
	sessionID, _ := data["sessionId"].(string)
	if !strings.HasPrefix(sessionID, "session_") {
		t.Fatalf("expected generated session id, got %q", sessionID)
	}
}

func TestChatMessageEchoesSessionID(t *testing.T) {
	r := setupRouter(stubResponder{reply: "ok"})

	resp := postJSON(r, "/chat/message", map[string]string{"message": "hello", "sessionId": "session_abc"})
	data := decodeData(t, resp)
	if data["sessionId"] != "session_abc" {
		t.Fatalf("expected echoed session id, got %v", data["sessionId"])
	}
}

func TestChatMessageValidation(t *testing.T) {
	r := setupRouter(stubResponder{reply: "ok"})

	resp := postJSON(r, "/chat/message", map[string]string{"message": "  "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("blank message: expected 400, got %d", resp.Code)
	}

	resp = postJSON(r, "/chat/message", map[string]string{"message": strings.Repeat("a", maxMessageLen+1)})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("oversized message: expected 400, got %d", resp.Code)
	}
}

func TestChatMessageWithoutResponder(t *testing.T) {
	r := setupRouter(nil)

	resp := postJSON(r, "/chat/message", map[string]string{"message": "hello"})
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestAnalyzeMoodHeuristicFallback(t *testing.T) {
	r := setupRouter(nil)

	resp := postJSON(r, "/chat/analyze-mood", map[string]string{"text": "I feel so happy and excited today!"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	data := decodeData(t, resp)
	if data["mood"] != "joy" {
		t.Fatalf("expected joy, got %v", data["mood"])
	}
	if data["sentiment"] != "positive" {
		t.Fatalf("expected positive sentiment, got %v", data["sentiment"])
	}
}

func TestAnalyzeMoodValidation(t *testing.T) {
	r := setupRouter(nil)

	resp := postJSON(r, "/chat/analyze-mood", map[string]string{"text": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("empty text: expected 400, got %d", resp.Code)
	}
}

func TestAnalyzeMoodMalformedUpstream(t *testing.T) {
	r := setupRouter(stubResponder{analysisErr: &ai.MalformedAnalysisError{Raw: "not valid json"}})

	resp := postJSON(r, "/chat/analyze-mood", map[string]string{"text": "how am I feeling"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["rawResponse"] != "not valid json" {
		t.Fatalf("expected raw model text in response, got %v", body["rawResponse"])
	}
}

func TestConversationStarter(t *testing.T) {
	r := setupRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/chat/conversation-starter", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	data := decodeData(t, resp)
	starter, _ := data["message"].(string)
	found := false
	for _, s := range starters {
		if s == starter {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("starter %q not in the known set", starter)
	}
}

func TestChatHealth(t *testing.T) {
	r := setupRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/chat/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"status":"healthy"`) {
		t.Fatalf("unexpected health body: %s", resp.Body.String())
	}
}
