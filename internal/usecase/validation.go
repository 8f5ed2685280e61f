package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xavierca1/template-sender/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	nonDigits        = regexp.MustCompile(`\D`)
	recipientPattern = regexp.MustCompile(`^55\d{10,11}$`)
)

// SanitizePhone remove tudo que não for dígito. O valor armazenado (e o que
// vai no payload) é sempre digits-only.
func SanitizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidateSendTemplateInput aplica as regras do formulário. Qualquer violação
// bloqueia o envio: nenhuma chamada de rede acontece com input inválido.
func ValidateSendTemplateInput(input SendTemplateInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Template) == "" || !entity.IsValidTemplate(input.Template) {
		errors = append(errors, ValidationError{"template", "Por favor, selecione um template"})
	}

	if strings.TrimSpace(input.PhoneNumberID) == "" || !entity.IsValidPhoneNumberID(input.PhoneNumberID) {
		errors = append(errors, ValidationError{"phone_number_id", "Por favor, selecione um ID de telefone"})
	}

	recipient := SanitizePhone(input.RecipientPhone)
	if recipient == "" {
		errors = append(errors, ValidationError{"recipient_phone", "Por favor, insira o número do destinatário"})
	} else if !recipientPattern.MatchString(recipient) {
		errors = append(errors, ValidationError{"recipient_phone", "Formato inválido. Use: 5599999999999 (somente números)"})
	}

	return errors
}
