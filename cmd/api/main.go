package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/template-sender/internal/infra/config"
	"github.com/xavierca1/template-sender/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/template-sender/internal/infra/http/middleware"
	"github.com/xavierca1/template-sender/internal/infra/integration/webhook"
	"github.com/xavierca1/template-sender/internal/infra/memory"
	"github.com/xavierca1/template-sender/internal/infra/web"
	"github.com/xavierca1/template-sender/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	// 1. Repositório (histórico em memória, sem persistência)
	attemptRepo := memory.NewAttemptRepository(50)

	// 2. Gateway
	gateway := webhook.NewClient(cfg.WebhookURL)

	// 3. UseCases
	sendUC := usecase.NewSendTemplateUseCase(gateway, attemptRepo)

	// 4. Handlers
	indexHandler := web.NewIndexHandler(cfg.WebhookURL)
	sendHandler := handlers.NewSendHandler(sendUC)
	optionsHandler := handlers.NewOptionsHandler(cfg)
	historyHandler := handlers.NewHistoryHandler(attemptRepo)
	healthHandler := handlers.NewHealthHandler(cfg)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/", indexHandler.Handle)
	r.Post("/api/send", sendHandler.Handle)
	r.Get("/api/options", optionsHandler.Handle)
	r.Get("/api/history", historyHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + cfg.Port
	log.Printf("🔥 Template Sender rodando na porta %s", port)
	log.Printf("📡 Webhook destino: %s", cfg.WebhookURL)
	http.ListenAndServe(port, r)
}
