package webhook

import "fmt"

// Corpo de erro do webhook: qualquer shape é aceito, só "message" interessa
type errorBody struct {
	Message string `json:"message"`
}

// APIError indica que o webhook respondeu fora da faixa 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Erro: %d", e.StatusCode)
}
