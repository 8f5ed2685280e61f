package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/template-sender/internal/entity"
	"github.com/xavierca1/template-sender/internal/infra/integration/webhook"
)

func testPayload() *entity.OutboundPayload {
	return entity.NewOutboundPayload("hello_world", "785310631336841", "5599999999999", time.Now())
}

func TestClientSendSuccess(t *testing.T) {
	var method, contentType string
	var received entity.OutboundPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := webhook.NewClient(server.URL)
	body, err := client.Send(context.Background(), testPayload())

	assert.NoError(t, err)
	assert.JSONEq(t, `{"message":"ok"}`, string(body))
	assert.Equal(t, "POST", method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "whatsapp", received.MessagingProduct)
	assert.Equal(t, "hello_world", received.Template.Name)
	assert.Equal(t, "5599999999999", received.To)
}

// Qualquer status na faixa 2xx é sucesso
func TestClientSendAcceptsAny2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"queued":true}`))
	}))
	defer server.Close()

	client := webhook.NewClient(server.URL)
	body, err := client.Send(context.Background(), testPayload())

	assert.NoError(t, err)
	assert.JSONEq(t, `{"queued":true}`, string(body))
}

func TestClientSendWebhookRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"internal failure"}`))
	}))
	defer server.Close()

	client := webhook.NewClient(server.URL)
	body, err := client.Send(context.Background(), testPayload())

	assert.Nil(t, body)
	assert.Error(t, err)

	var apiErr *webhook.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "internal failure", apiErr.Message)
	assert.Equal(t, "internal failure", err.Error())
}

// Sem campo "message" no corpo, o erro vira o genérico com o status
func TestClientSendWebhookRejectedWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"rota não encontrada"}`))
	}))
	defer server.Close()

	client := webhook.NewClient(server.URL)
	_, err := client.Send(context.Background(), testPayload())

	assert.Error(t, err)
	assert.Equal(t, "Erro: 404", err.Error())
}

func TestClientSendRejectsNonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := webhook.NewClient(server.URL)
	body, err := client.Send(context.Background(), testPayload())

	assert.Nil(t, body)
	assert.Error(t, err)
}

func TestClientSendConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // derruba o servidor antes do envio

	client := webhook.NewClient(server.URL)
	body, err := client.Send(context.Background(), testPayload())

	assert.Nil(t, body)
	assert.Error(t, err)
	assert.NotEmpty(t, err.Error())
}
