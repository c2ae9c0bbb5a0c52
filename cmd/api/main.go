package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mindease/mindease/backend/internal/auth"
	"github.com/mindease/mindease/backend/internal/config"
	"github.com/mindease/mindease/backend/internal/handler"
	wellnessmodel "github.com/mindease/mindease/backend/internal/model/wellness"
	aiservice "github.com/mindease/mindease/backend/internal/service/ai"
	chatservice "github.com/mindease/mindease/backend/internal/service/chat"
	moodservice "github.com/mindease/mindease/backend/internal/service/mood"
	"github.com/mindease/mindease/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("failed to open store at %s: %v", cfg.Store.Path, err)
	}
	defer db.Close()

	chatService := chatservice.NewService(db)
	moodService := moodservice.NewService(db)
	contentStore := wellnessmodel.NewMemoryStore()

	// Token verification degrades to an anonymous identity when Firebase
	// credentials are not configured, matching local development use.
	var verifier auth.Verifier
	if cfg.Auth.Enabled() {
		verifier, err = auth.NewFirebaseVerifier(ctx, cfg.Auth)
		if err != nil {
			log.Printf("warning: failed to initialize Firebase verifier: %v", err)
			log.Println("continuing with anonymous identities only")
			verifier = auth.AnonymousVerifier{}
		} else {
			log.Println("Firebase token verification enabled")
		}
	} else {
		log.Println("Firebase credentials not configured, using anonymous identities")
		verifier = auth.AnonymousVerifier{}
	}

	var aiService *aiservice.Service
	if cfg.AI.Enabled() {
		aiService, err = aiservice.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping AI initialization")
	}

	router := handler.NewRouter(cfg, chatService, moodService, contentStore, aiService, verifier)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Mind-Ease backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
