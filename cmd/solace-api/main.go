package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/solacehq/solace-api/internal/adapters/http"
	"github.com/solacehq/solace-api/internal/adapters/llm"
	firestorestore "github.com/solacehq/solace-api/internal/adapters/storage/firestore"
	memstore "github.com/solacehq/solace-api/internal/adapters/storage/memory"
	"github.com/solacehq/solace-api/internal/app/activity"
	"github.com/solacehq/solace-api/internal/app/auth"
	"github.com/solacehq/solace-api/internal/app/chat"
	"github.com/solacehq/solace-api/internal/app/community"
	"github.com/solacehq/solace-api/internal/app/journal"
	"github.com/solacehq/solace-api/internal/app/profile"
	"github.com/solacehq/solace-api/internal/config"
	"github.com/solacehq/solace-api/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}

	cfg := config.Load()

	// LLM: mock or Vertex by config (mock is the local-mode default)
	var (
		llmClient domain.LLMClient
		err       error
	)
	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK LLM client")
		llmClient = llm.NewMockLLM()
	} else {
		log.Println("[LLM] Using Vertex LLM client")
		llmClient, err = llm.NewVertexClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Vertex LLM client: %v", err)
		}
	}

	// Storage: Firestore or Memory
	var (
		userStore     domain.UserStore
		recordStore   domain.ConversationStore
		moodStore     domain.MoodStore
		journalStore  domain.JournalStore
		postStore     domain.PostStore
		activityStore domain.ActivityStore
	)

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}

		// 1 store, implements all the ports
		userStore = fsStore
		recordStore = fsStore
		moodStore = fsStore
		journalStore = fsStore
		postStore = fsStore
		activityStore = fsStore

	default:
		log.Println("[STORE] Using in-memory storage")
		userStore = memstore.NewUserStore()
		recordStore = memstore.NewConversationStore()
		moodStore = memstore.NewMoodStore()
		journalStore = memstore.NewJournalStore()
		postStore = memstore.NewPostStore()
		activityStore = memstore.NewActivityStore()
	}

	// Services
	authSvc := auth.NewService(userStore, cfg.TokenSecret)
	activitySvc := activity.NewService(activityStore)
	chatSvc := chat.NewService(llmClient, userStore, moodStore, recordStore, activitySvc)
	communitySvc := community.NewService(postStore)
	journalSvc := journal.NewService(journalStore, moodStore)
	profileSvc := profile.NewService(userStore, recordStore, journalStore, moodStore, postStore)

	handler := httpadapter.NewServer(authSvc, chatSvc, communitySvc, journalSvc, activitySvc, profileSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	log.Println("Solace API listening on port:", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
