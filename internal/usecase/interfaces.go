package usecase

import (
	"context"
	"encoding/json"

	"github.com/xavierca1/template-sender/internal/entity"
)

// WebhookGateway dispara o POST único para o endpoint configurado e devolve
// o corpo da resposta como JSON cru (nenhum schema é validado na resposta).
type WebhookGateway interface {
	Send(ctx context.Context, payload *entity.OutboundPayload) (json.RawMessage, error)
}

type AttemptRepositoryInterface interface {
	Save(ctx context.Context, attempt *entity.SendAttempt) error
	ListRecent(ctx context.Context, limit int) ([]*entity.SendAttempt, error)
}
