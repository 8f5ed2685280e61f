package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entidade: uma tentativa de envio registrada pelo formulário.
// Numa tentativa concluída, exatamente um entre WebhookResponse e Error
// está preenchido; SentPayload fica preenchido mesmo quando o envio falha.
type SendAttempt struct {
	ID              string           `json:"id"`
	SentPayload     *OutboundPayload `json:"sent_payload,omitempty"`
	WebhookResponse json.RawMessage  `json:"webhook_response,omitempty"`
	Error           string           `json:"error,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Factory
func NewSendAttempt(payload *OutboundPayload) *SendAttempt {
	return &SendAttempt{
		ID:          uuid.New().String(),
		SentPayload: payload,
		CreatedAt:   time.Now(),
	}
}

func (a *SendAttempt) Succeed(response json.RawMessage) {
	a.WebhookResponse = response
	a.Error = ""
}

func (a *SendAttempt) Fail(message string) {
	a.WebhookResponse = nil
	a.Error = message
}
