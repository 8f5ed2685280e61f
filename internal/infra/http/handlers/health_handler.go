package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/template-sender/internal/infra/config"
)

type HealthHandler struct {
	Cfg       *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check Webhook
	if h.Cfg != nil && h.Cfg.WebhookURL != "" {
		deps["webhook"] = "configured"
	} else {
		deps["webhook"] = "not configured"
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
