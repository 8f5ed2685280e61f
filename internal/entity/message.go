package entity

import (
	"time"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

const (
	MessagingProduct    = "whatsapp"
	MessageTypeTemplate = "template"
	DefaultLanguageCode = "en_US"
	UIOrigin            = "lovable-web-sender"
)

// Value Object: idioma do template (fixo em en_US para todos os envios)
type Language struct {
	Code string `json:"code"`
}

// Value Object: referência ao template aprovado na Meta (só o nome viaja;
// o conteúdo vive do lado do provedor)
type Template struct {
	Name     string   `json:"name"`
	Language Language `json:"language"`
}

type Debug struct {
	UIOrigin string `json:"ui_origin"`
	SentAt   string `json:"sent_at"`
}

// Entidade: payload enviado ao webhook, no formato da Cloud API
type OutboundPayload struct {
	MessagingProduct  string   `json:"messaging_product"`
	FromPhoneNumberID string   `json:"from_phone_number_id"`
	To                string   `json:"to"`
	Type              string   `json:"type"`
	Template          Template `json:"template"`
	Debug             Debug    `json:"debug"`
}

// Factory
func NewOutboundPayload(templateName, phoneNumberID, recipient string, sentAt time.Time) *OutboundPayload {
	return &OutboundPayload{
		MessagingProduct:  MessagingProduct,
		FromPhoneNumberID: phoneNumberID,
		To:                recipient,
		Type:              MessageTypeTemplate,
		Template: Template{
			Name:     templateName,
			Language: Language{Code: DefaultLanguageCode},
		},
		Debug: Debug{
			UIOrigin: UIOrigin,
			SentAt:   sentAt.Format(time.RFC3339),
		},
	}
}
