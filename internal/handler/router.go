package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/mindease/mindease/backend/internal/auth"
	"github.com/mindease/mindease/backend/internal/config"
	chathandler "github.com/mindease/mindease/backend/internal/handler/chat"
	conversationhandler "github.com/mindease/mindease/backend/internal/handler/conversation"
	journalhandler "github.com/mindease/mindease/backend/internal/handler/journal"
	moodhandler "github.com/mindease/mindease/backend/internal/handler/mood"
	streamhandler "github.com/mindease/mindease/backend/internal/handler/stream"
	wellnesshandler "github.com/mindease/mindease/backend/internal/handler/wellness"
	"github.com/mindease/mindease/backend/internal/middleware"
	wellnessmodel "github.com/mindease/mindease/backend/internal/model/wellness"
	aiservice "github.com/mindease/mindease/backend/internal/service/ai"
	chatservice "github.com/mindease/mindease/backend/internal/service/chat"
	moodservice "github.com/mindease/mindease/backend/internal/service/mood"
	"github.com/mindease/mindease/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(
	cfg *config.Config,
	chatSvc *chatservice.Service,
	moodSvc *moodservice.Service,
	content wellnessmodel.Store,
	aiSvc *aiservice.Service,
	verifier auth.Verifier,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Rate.Requests, cfg.Rate.Window))

	// A nil *Service must stay a nil interface so handlers can detect it.
	var responder chathandler.Responder
	if aiSvc != nil {
		responder = aiSvc
	}
	var convResponder conversationhandler.Responder
	if aiSvc != nil {
		convResponder = aiSvc
	}

	chatHandler := chathandler.New(responder)
	conversationHandler := conversationhandler.New(chatSvc, moodSvc, convResponder)
	moodHandler := moodhandler.New(moodSvc)
	journalHandler := journalhandler.New(moodSvc)
	wellnessHandler := wellnesshandler.New(content)

	var sseHandler *streamhandler.Handler
	if aiSvc != nil {
		sseHandler = streamhandler.New(aiSvc, chatSvc)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"service":   "Mind-Ease Backend",
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(api chi.Router) {
		// Public surface: stateless chat and static content.
		chatHandler.RegisterRoutes(api)
		wellnessHandler.RegisterRoutes(api)

		// Everything keyed by user identity requires a bearer token.
		api.Group(func(authed chi.Router) {
			authed.Use(middleware.RequireAuth(verifier))

			conversationHandler.RegisterRoutes(authed)
			moodHandler.RegisterRoutes(authed)
			journalHandler.RegisterRoutes(authed)

			authed.Get("/stream/{conversationID}", func(w http.ResponseWriter, r *http.Request) {
				if sseHandler == nil {
					utils.RespondError(w, http.StatusServiceUnavailable, "ai streaming unavailable")
					return
				}
				sseHandler.ServeSSE(w, r, chi.URLParam(r, "conversationID"))
			})

			if sseHandler != nil {
				wsHandler := streamhandler.NewWebSocketHandler(sseHandler)
				wsHandler.RegisterWebSocketRoutes(authed)
			}
		})
	})

	return r
}
