package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/template-sender/internal/entity"
)

type SendTemplateUseCase struct {
	Gateway  WebhookGateway
	Attempts AttemptRepositoryInterface
}

func NewSendTemplateUseCase(gateway WebhookGateway, attempts AttemptRepositoryInterface) *SendTemplateUseCase {
	return &SendTemplateUseCase{
		Gateway:  gateway,
		Attempts: attempts,
	}
}

func (uc *SendTemplateUseCase) Execute(ctx context.Context, input SendTemplateInput) (*SendTemplateOutput, error) {
	// 1. Validação antes de qualquer chamada de rede
	if errs := ValidateSendTemplateInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: errs[0].Message}
	}

	// 2. Monta o payload carimbando o sent_at do momento do envio
	recipient := SanitizePhone(input.RecipientPhone)
	payload := entity.NewOutboundPayload(input.Template, input.PhoneNumberID, recipient, time.Now())

	// 3. O payload fica registrado ANTES da confirmação: mesmo que o webhook
	//    falhe, o operador vê o que foi tentado
	output := &SendTemplateOutput{SentPayload: payload}
	attempt := entity.NewSendAttempt(payload)

	// 4. POST único, sem retry
	response, err := uc.Gateway.Send(ctx, payload)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Erro desconhecido ao enviar"
		}
		output.Error = msg
		attempt.Fail(msg)
		log.Printf("❌ Envio do template %s falhou: %s", input.Template, msg)
	} else {
		output.WebhookResponse = response
		attempt.Succeed(response)
		log.Printf("✅ Template %s enviado para %s", input.Template, recipient)
	}

	// 5. Histórico é melhor esforço; falha aqui não muda o resultado do envio
	if uc.Attempts != nil {
		if saveErr := uc.Attempts.Save(ctx, attempt); saveErr != nil {
			log.Printf("⚠️ Falha ao registrar tentativa: %v", saveErr)
		}
	}

	return output, nil
}
