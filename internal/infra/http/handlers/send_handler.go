package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/template-sender/internal/infra/http/middleware"
	"github.com/xavierca1/template-sender/internal/usecase"
)

type SendHandler struct {
	SendTemplateUC *usecase.SendTemplateUseCase
}

func NewSendHandler(uc *usecase.SendTemplateUseCase) *SendHandler {
	return &SendHandler{SendTemplateUC: uc}
}

// Handle (POST /api/send)
// Valida os três campos, executa o envio e devolve
// {sent_payload, webhook_response, error}. Uma tentativa concluída responde
// 200 mesmo quando o webhook recusou: o resultado vai no corpo.
func (h *SendHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendTemplateInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	// Validação field-level antes de chegar no usecase, para o front
	// receber a mensagem de cada campo
	if errs := usecase.ValidateSendTemplateInput(input); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "VALIDATION_ERROR",
			"message": errs[0].Message,
			"details": errs,
		})
		return
	}

	output, err := h.SendTemplateUC.Execute(r.Context(), input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	if output.Error != "" {
		middleware.RecordMessageSend(input.Template, "error")
		middleware.RecordWebhookError("send_failed")
	} else {
		middleware.RecordMessageSend(input.Template, "success")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(output)
}
