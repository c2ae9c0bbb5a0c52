package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mindease/mindease/backend/internal/middleware"
	moodservice "github.com/mindease/mindease/backend/internal/service/mood"
	"github.com/mindease/mindease/backend/internal/store"
)

type stubVerifier struct {
	id string
}

func (v stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	return v.id, nil
}

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	r := chi.NewRouter()
	r.Use(middleware.RequireAuth(stubVerifier{id: "user-1"}))
	New(moodservice.NewService(st)).RegisterRoutes(r)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var env struct {
		Data map[string]interface{} `json:"data"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env.Data
}

func TestCreateAndListJournals(t *testing.T) {
	r := setupRouter(t)

	resp, data := do(t, r, http.MethodPost, "/journals", map[string]string{"text": "today was hard but I managed"})
	if resp.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if data["id"] == "" || data["id"] == nil {
		t.Fatalf("missing id in %v", data)
	}
	if data["text"] != "today was hard but I managed" {
		t.Fatalf("text not echoed: %v", data["text"])
	}

	resp, data = do(t, r, http.MethodGet, "/journals", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	if count, _ := data["count"].(float64); count != 1 {
		t.Fatalf("expected 1 journal, got %v", data["count"])
	}
}

func TestCreateJournalValidation(t *testing.T) {
	r := setupRouter(t)

	resp, _ := do(t, r, http.MethodPost, "/journals", map[string]string{"text": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("blank text: expected 400, got %d", resp.Code)
	}

	resp, _ = do(t, r, http.MethodPost, "/journals", map[string]string{"text": strings.Repeat("a", maxJournalLen+1)})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("oversized text: expected 400, got %d", resp.Code)
	}
}
