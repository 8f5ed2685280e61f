package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/template-sender/internal/entity"
)

type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send: dispara o POST único para o webhook e devolve o corpo como JSON cru.
// O corpo é parseado como JSON independente do status HTTP; fora da faixa
// 2xx o resultado vira um *APIError com o campo "message" da resposta.
func (c *Client) Send(ctx context.Context, payload *entity.OutboundPayload) (json.RawMessage, error) {
	// 1. Prepara o JSON
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json: %w", err)
	}

	// 2. Cria Request
	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	// 3. Envia
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ Webhook: erro na conexão: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do webhook: %w", err)
	}

	if !json.Valid(respBody) {
		log.Printf("❌ Webhook: resposta não é JSON válido: %s", string(respBody))
		return nil, fmt.Errorf("resposta inválida do webhook")
	}

	// 4. Trata Erro (400, 401, 500...)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		json.Unmarshal(respBody, &body)
		log.Printf("❌ Webhook: status %d: %s", resp.StatusCode, string(respBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	log.Printf("✅ Webhook: requisição aceita (status %d)", resp.StatusCode)
	return json.RawMessage(respBody), nil
}
