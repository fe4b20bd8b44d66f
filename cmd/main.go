package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/mithunlabs/vani/internal/ai"
	"github.com/mithunlabs/vani/internal/delivery"
	"github.com/mithunlabs/vani/internal/dialog"
	"github.com/mithunlabs/vani/internal/speech"
	"github.com/mithunlabs/vani/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Replies are synthesized with the Hindi voice, the closest available match
// for Devanagari Sanskrit.
const ttsLang = "hi"

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	uploadDir := getEnv("UPLOAD_DIR", "uploads")
	outputDir := getEnv("OUTPUT_DIR", "outputs")

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// STORAGE
	// =========================================================================

	store, err := storage.New(uploadDir, outputDir)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	// =========================================================================
	// CLIENTS (STT / LLM / TTS)
	// =========================================================================

	ctx := context.Background()

	geminiClient, err := ai.NewGeminiClient(ctx, geminiKey)
	if err != nil {
		log.Fatalf("failed to init gemini: %v", err)
	}
	defer geminiClient.Close()

	whisperClient := speech.NewWhisperClient(openaiKey)
	ttsClient := speech.NewGoogleTTSClient(ttsLang)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	aiService := ai.NewService(geminiClient)
	speechService := speech.NewService(whisperClient, ttsClient)
	dialogService := dialog.NewService(speechService, aiService)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	voiceHandler := delivery.NewVoiceHandler(dialogService, store, zl)
	ttsHandler := delivery.NewTTSHandler(speechService, store, zl)

	// ROUTES
	delivery.RegisterRoutes(r, voiceHandler, ttsHandler, outputDir)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "vani",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
