package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/template-sender/internal/usecase"
)

func TestSanitizePhoneRemovesNonDigits(t *testing.T) {
	assert.Equal(t, "5599999999999", usecase.SanitizePhone("+55 (99) 99999-9999"))
	assert.Equal(t, "5511987654321", usecase.SanitizePhone("55 11 98765-4321"))
	assert.Equal(t, "", usecase.SanitizePhone("abc-+() "))
	assert.Equal(t, "5599999999999", usecase.SanitizePhone("5599999999999"))
}

func TestValidateAcceptsValidInput(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "hello_world",
		PhoneNumberID:  "785310631336841",
		RecipientPhone: "5599999999999",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Empty(t, errs)
}

// O destinatário pode vir formatado; a sanitização roda antes do pattern
func TestValidateAcceptsFormattedRecipient(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "hello_world",
		PhoneNumberID:  "785310631336841",
		RecipientPhone: "+55 (99) 99999-9999",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Empty(t, errs)
}

func TestValidateAccepts10And11DigitNumbers(t *testing.T) {
	base := usecase.SendTemplateInput{
		Template:      "hello_world",
		PhoneNumberID: "785310631336841",
	}

	// 55 + 10 dígitos
	base.RecipientPhone = "551199998888"
	assert.Empty(t, usecase.ValidateSendTemplateInput(base))

	// 55 + 11 dígitos
	base.RecipientPhone = "5511999988887"
	assert.Empty(t, usecase.ValidateSendTemplateInput(base))

	// 55 + 9 dígitos: curto demais
	base.RecipientPhone = "55119999888"
	assert.Len(t, usecase.ValidateSendTemplateInput(base), 1)

	// 55 + 12 dígitos: longo demais
	base.RecipientPhone = "55119999888877"
	assert.Len(t, usecase.ValidateSendTemplateInput(base), 1)
}

func TestValidateRejectsMissingTemplate(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "",
		PhoneNumberID:  "785310631336841",
		RecipientPhone: "5599999999999",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Len(t, errs, 1)
	assert.Equal(t, "template", errs[0].Field)
	assert.Equal(t, "Por favor, selecione um template", errs[0].Message)
}

// Valor que não está no catálogo cai na mesma mensagem de seleção
func TestValidateRejectsUnknownTemplate(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "nao_existe",
		PhoneNumberID:  "785310631336841",
		RecipientPhone: "5599999999999",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Len(t, errs, 1)
	assert.Equal(t, "Por favor, selecione um template", errs[0].Message)
}

func TestValidateRejectsMissingPhoneNumberID(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "hello_world",
		PhoneNumberID:  "",
		RecipientPhone: "5599999999999",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Len(t, errs, 1)
	assert.Equal(t, "phone_number_id", errs[0].Field)
	assert.Equal(t, "Por favor, selecione um ID de telefone", errs[0].Message)
}

func TestValidateRejectsEmptyRecipient(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "hello_world",
		PhoneNumberID:  "785310631336841",
		RecipientPhone: "",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Len(t, errs, 1)
	assert.Equal(t, "Por favor, insira o número do destinatário", errs[0].Message)
}

// Cenário: número curto demais e sem prefixo 55
func TestValidateRejectsShortRecipient(t *testing.T) {
	input := usecase.SendTemplateInput{
		Template:       "hello_world",
		PhoneNumberID:  "785310631336841",
		RecipientPhone: "123",
	}

	errs := usecase.ValidateSendTemplateInput(input)

	assert.Len(t, errs, 1)
	assert.Equal(t, "recipient_phone", errs[0].Field)
	assert.Contains(t, errs[0].Message, "Formato inválido")
}

func TestValidateAccumulatesAllFieldErrors(t *testing.T) {
	errs := usecase.ValidateSendTemplateInput(usecase.SendTemplateInput{})

	assert.Len(t, errs, 3)
}
