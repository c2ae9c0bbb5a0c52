package wellness

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	wellnessmodel "github.com/mindease/mindease/backend/internal/model/wellness"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(wellnessmodel.NewMemoryStore()).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, resp.Code)
	}
	var env struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env.Data
}

func TestCopingStrategiesDefaultMood(t *testing.T) {
	r := setupRouter()
	data := get(t, r, "/wellness/coping-strategies")

	if data["mood"] != "general" {
		t.Fatalf("expected default mood general, got %v", data["mood"])
	}
	strategies, _ := data["strategies"].([]interface{})
	if len(strategies) == 0 {
		t.Fatalf("expected at least one strategy")
	}
}

func TestCopingStrategiesByMood(t *testing.T) {
	r := setupRouter()
	for _, mood := range []string{"anxious", "sad", "angry"} {
		data := get(t, r, "/wellness/coping-strategies?mood="+mood)
		strategies, _ := data["strategies"].([]interface{})
		if len(strategies) == 0 {
			t.Fatalf("expected strategies for mood %q", mood)
		}
	}
}

func TestMotivationalQuote(t *testing.T) {
	r := setupRouter()
	data := get(t, r, "/wellness/motivational-quotes")

	quote, _ := data["quote"].(map[string]interface{})
	if text, _ := quote["text"].(string); text == "" {
		t.Fatalf("expected a non-empty quote, got %v", data["quote"])
	}
}

func TestCrisisResources(t *testing.T) {
	r := setupRouter()
	data := get(t, r, "/wellness/crisis-resources")

	resources, _ := data["resources"].([]interface{})
	if len(resources) == 0 {
		t.Fatalf("expected crisis resources")
	}
	if disclaimer, _ := data["disclaimer"].(string); disclaimer == "" {
		t.Fatalf("expected a disclaimer")
	}
}

func TestMeditationTips(t *testing.T) {
	r := setupRouter()
	data := get(t, r, "/wellness/meditation-tips")

	tips, _ := data["tips"].([]interface{})
	if len(tips) == 0 {
		t.Fatalf("expected meditation tips")
	}
}
