// Package wellness serves the static wellness content endpoints.
package wellness

import (
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	wellnessmodel "github.com/mindease/mindease/backend/internal/model/wellness"
	"github.com/mindease/mindease/backend/pkg/utils"
)

// Handler serves /api/wellness.
type Handler struct {
	content wellnessmodel.Store
}

// New creates the wellness handler over a content store.
func New(content wellnessmodel.Store) *Handler {
	return &Handler{content: content}
}

// RegisterRoutes mounts the wellness endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/wellness/coping-strategies", h.handleCopingStrategies)
	r.Get("/wellness/motivational-quotes", h.handleMotivationalQuote)
	r.Get("/wellness/crisis-resources", h.handleCrisisResources)
	r.Get("/wellness/meditation-tips", h.handleMeditationTips)
	r.Get("/wellness/health", h.handleHealth)
}

func (h *Handler) handleCopingStrategies(w http.ResponseWriter, r *http.Request) {
	mood := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("mood")))
	if mood == "" {
		mood = "general"
	}

	strategies := h.content.Strategies(mood)

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"mood":       mood,
		"strategies": strategies,
		"count":      len(strategies),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleMotivationalQuote(w http.ResponseWriter, r *http.Request) {
	quotes := h.content.Quotes()
	quote := quotes[rand.Intn(len(quotes))]

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"quote":     quote,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleCrisisResources(w http.ResponseWriter, r *http.Request) {
	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"resources":  h.content.CrisisResources(),
		"disclaimer": "These resources are for informational purposes. In case of emergency, please contact local emergency services immediately.",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleMeditationTips(w http.ResponseWriter, r *http.Request) {
	tips := h.content.MeditationTips()

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"tips":      tips,
		"count":     len(tips),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"service":   "Mind-Ease Wellness Service",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"features": []string{
			"Coping strategies",
			"Motivational quotes",
			"Crisis resources",
			"Meditation tips",
		},
	})
}
