package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/template-sender/internal/entity"
	"github.com/xavierca1/template-sender/internal/infra/config"
)

type OptionsHandler struct {
	Cfg *config.Config
}

func NewOptionsHandler(cfg *config.Config) *OptionsHandler {
	return &OptionsHandler{Cfg: cfg}
}

type optionsResponse struct {
	Templates      []entity.Option `json:"templates"`
	PhoneNumberIDs []entity.Option `json:"phone_number_ids"`
	WebhookURL     string          `json:"webhook_url"`
	LanguageCode   string          `json:"language_code"`
}

// Handle (GET /api/options)
// Catálogos fixos do formulário, para o front renderizar de uma fonte só
func (h *OptionsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(optionsResponse{
		Templates:      entity.TemplateOptions,
		PhoneNumberIDs: entity.PhoneNumberIDOptions,
		WebhookURL:     h.Cfg.WebhookURL,
		LanguageCode:   entity.DefaultLanguageCode,
	})
}
