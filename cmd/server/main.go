package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"github.com/rahul4112/portfolio-backend/internal/auth"
	"github.com/rahul4112/portfolio-backend/internal/chat"
	"github.com/rahul4112/portfolio-backend/internal/config"
	"github.com/rahul4112/portfolio-backend/internal/github"
	"github.com/rahul4112/portfolio-backend/internal/middleware"
	"github.com/rahul4112/portfolio-backend/internal/projects"
	"github.com/rahul4112/portfolio-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	// ── Sessions ─────────────────────────────────────────────
	var sessions auth.Store
	switch cfg.SessionBackend {
	case "redis":
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		sessions = auth.NewRedisStore(rdb)
	default:
		sessions = auth.NewMemoryStore()
	}

	// ── Image store ──────────────────────────────────────────
	var images store.FileStore
	var localImages *store.LocalStore
	switch cfg.UploadsBackend {
	case "minio":
		images, err = store.NewMinioStore(
			ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatalf("minio connect: %v", err)
		}
	default:
		localImages, err = store.NewLocalStore(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("uploads dir: %v", err)
		}
		images = localImages
	}

	// ── Project repository ───────────────────────────────────
	var repo projects.Repository
	switch cfg.ProjectsBackend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		pgRepo := projects.NewPostgresRepository(pool, images)
		if err := pgRepo.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		repo = pgRepo
	default:
		repo, err = projects.NewFileRepository(cfg.ProjectsFile, images)
		if err != nil {
			log.Fatalf("projects file: %v", err)
		}
	}

	// ── Chat strategy ────────────────────────────────────────
	knowledge, err := chat.LoadKnowledge(cfg.KnowledgeFile)
	if err != nil {
		log.Fatalf("knowledge base: %v", err)
	}
	var responder chat.Responder
	if cfg.ChatProvider == "llm" {
		responder = chat.NewLLMResponder(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, knowledge)
	} else {
		responder = chat.NewKeywordResponder()
	}

	// ── Handlers ─────────────────────────────────────────────
	verifier := auth.NewVerifier(cfg.AdminUsername, cfg.AdminPasswordHash)
	authHandler := auth.NewHandler(verifier, sessions)
	projectHandler := projects.NewHandler(repo)
	chatHandler := chat.NewHandler(responder)
	githubHandler := github.NewHandler(github.NewClient(cfg.GitHubUsername, cfg.GitHubToken))

	// ── Session eviction ─────────────────────────────────────
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := sessions.Cleanup(context.Background(), auth.SessionTTL); err != nil {
			log.Printf("session cleanup: %v", err)
		}
	}); err != nil {
		log.Fatalf("cron: %v", err)
	}
	c.Start()
	defer c.Stop()

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public routes
	r.Get("/api/projects", projectHandler.List)
	r.Post("/api/chat", chatHandler.Message)

	// Uploaded images, only when stored on local disk
	if localImages != nil {
		r.Handle("/uploads/projects/*", http.StripPrefix("/uploads/projects/",
			http.FileServer(http.Dir(localImages.Dir()))))
	}

	// Admin routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/verify", authHandler.Verify)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(sessions))
			r.Get("/categories", projectHandler.ListCategories)
			r.Post("/projects", projectHandler.Create)
			r.Delete("/projects/{id}", projectHandler.Delete)
			r.Get("/github-repos", githubHandler.ListRepos)
		})
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
