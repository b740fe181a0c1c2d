package main

import (
	"fmt"
	"log"
	"net/http"

	"skilledu/config"
	"skilledu/db"
	"skilledu/handlers"
	"skilledu/services"
	"skilledu/services/boss"

	"github.com/gorilla/mux"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	if cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY environment variable is required")
	}

	historyRepo, err := db.NewPostgresHistoryRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize history database: %v", err)
	}
	defer historyRepo.Close()

	llm, err := openai.New(
		openai.WithToken(cfg.GroqAPIKey),
		openai.WithModel(cfg.GroqModel),
		openai.WithBaseURL(cfg.GroqBaseURL),
	)
	if err != nil {
		log.Fatalf("Failed to initialize model client: %v", err)
	}

	historyService := services.NewHistoryService(historyRepo)
	historyHandler := handlers.NewHistoryHandler(historyService)

	bossService := boss.NewService(llm, historyService)
	askHandler := handlers.NewAskHandler(bossService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	askHandler.RegisterRoutes(router)
	historyHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
