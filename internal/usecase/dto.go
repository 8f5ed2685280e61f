package usecase

import (
	"encoding/json"

	"github.com/xavierca1/template-sender/internal/entity"
)

// Os três campos do formulário (FormValues)
type SendTemplateInput struct {
	Template       string `json:"template"`
	PhoneNumberID  string `json:"phone_number_id"`
	RecipientPhone string `json:"recipient_phone"`
}

// Estado final de uma tentativa. WebhookResponse e Error são mutuamente
// exclusivos; SentPayload vai preenchido nos dois casos, para o front
// mostrar o que foi tentado mesmo quando o webhook recusa.
type SendTemplateOutput struct {
	SentPayload     *entity.OutboundPayload `json:"sent_payload"`
	WebhookResponse json.RawMessage         `json:"webhook_response,omitempty"`
	Error           string                  `json:"error,omitempty"`
}
