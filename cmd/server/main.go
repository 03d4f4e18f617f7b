package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"webcraft/internal/config"
	"webcraft/internal/handler"
	"webcraft/internal/handler/sse"
	"webcraft/internal/metrics"
	"webcraft/internal/middleware"
	"webcraft/internal/repository"
	serviceChat "webcraft/internal/service/chat"
	"webcraft/internal/service/generator"
	serviceLLM "webcraft/internal/service/llm"
)

func main() {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := config.Load()

	// Logs go to stdout, and to a rotating file when LOG_DIR is set
	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := config.NewLogger(cfg, logOut)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"ai_mode", cfg.AIMode(),
	)

	ctx := context.Background()

	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	m := metrics.NewMetrics()

	catalog, err := generator.NewCatalog()
	if err != nil {
		log.Fatalf("Failed to load template catalog: %v", err)
	}
	engine := generator.NewEngine(catalog)
	logger.Info("template catalog loaded", "templates", len(catalog.Templates()))

	provider, err := serviceLLM.NewProviderFactory(cfg).GetProvider()
	if err != nil {
		log.Fatalf("Failed to set up LLM provider: %v", err)
	}
	if provider == nil {
		logger.Info("no cloud credentials configured, clients will use the local engine")
	}

	// Context writes of one conversation are serialized across services
	locks := serviceChat.NewKeyedMutex()

	conversationService := serviceChat.NewConversationService(store.Conversations, store.Messages, locks, m, logger)
	fileService := serviceChat.NewProjectFileService(store.Conversations, store.Files, store.Tx, m, logger)
	streamingService := serviceChat.NewStreamingService(serviceChat.StreamingConfig{
		ConversationRepo: store.Conversations,
		MessageRepo:      store.Messages,
		FileService:      fileService,
		Locks:            locks,
		Provider:         provider,
		PromptBuilder:    serviceLLM.NewSystemPromptBuilder(cfg.SystemPrompt),
		Model:            cfg.DefaultModel,
		MaxTokens:        cfg.MaxTokens,
		Metrics:          m,
		Logger:           logger,
	})

	logger.Info("services initialized", "store", store.Backend)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Handlers{
		Health:        handler.NewHealthHandler(streamingService),
		Conversations: handler.NewConversationHandler(conversationService, logger),
		Messages:      handler.NewMessageHandler(streamingService, &sse.Config{KeepAliveInterval: cfg.SSEKeepAliveInterval}, m, logger),
		Files:         handler.NewFileHandler(fileService, logger),
		Templates:     handler.NewTemplateHandler(engine, m, logger),
		Metrics:       m.Handler(),
	})

	var h http.Handler = mux

	h = middleware.RequestLogger(logger, m)(h)
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Last-Event-ID"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
