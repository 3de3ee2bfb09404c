package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"inkwell/internal/config"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/handler"
	"inkwell/internal/llm"
	"inkwell/internal/repository/memory"
	"inkwell/internal/repository/postgres"
	"inkwell/internal/service"
	"inkwell/internal/session"
)

// stores groups the three repository interfaces a storage backend must
// provide.
type stores interface {
	repositories.UserRepository
	repositories.DocumentRepository
	repositories.SuggestionRepository
}

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"provider", cfg.Provider,
	)

	ctx := context.Background()

	// Storage: postgres when DATABASE_URL is set, in-memory otherwise
	var store stores
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		pgStore := postgres.NewStore(pool, logger)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		store = pgStore
		logger.Info("storage ready", "backend", "postgres")
	} else {
		store = memory.New()
		logger.Info("storage ready", "backend", "memory")
	}

	// Sessions: redis when REDIS_URL is set, in-memory otherwise
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisSessions, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		sessions = redisSessions
		logger.Info("sessions ready", "backend", "redis")
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		logger.Info("sessions ready", "backend", "memory")
	}
	defer sessions.Close()

	// LLM provider and gateway
	provider, err := service.NewLLMProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to setup LLM provider: %v", err)
	}
	if !provider.SupportsModel(cfg.Model) {
		log.Fatalf("Provider %q does not support model %q", provider.Name(), cfg.Model)
	}
	gateway := llm.NewGateway(provider, cfg.Model, logger)

	// Services
	authService := service.NewAuthService(store, logger)
	docService := service.NewDocumentService(store, logger)
	suggestionService := service.NewSuggestionService(store, store, gateway, cfg.GenerateTimeout, logger)

	// Handlers and routes
	router := handler.NewRouter(handler.RouterConfig{
		Auth:        handler.NewAuthHandler(authService, sessions, int(cfg.SessionTTL.Seconds()), logger),
		Documents:   handler.NewDocumentHandler(docService, logger),
		Suggestions: handler.NewSuggestionHandler(suggestionService, logger),
		Sessions:    sessions,
		Users:       store,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.GenerateTimeout,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
