package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xavierca1/template-sender/internal/entity"
	"github.com/xavierca1/template-sender/internal/usecase"
)

type HistoryHandler struct {
	Repo usecase.AttemptRepositoryInterface
}

func NewHistoryHandler(repo usecase.AttemptRepositoryInterface) *HistoryHandler {
	return &HistoryHandler{Repo: repo}
}

// Handle (GET /api/history?limit=N)
// Tentativas mais recentes primeiro
func (h *HistoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_LIMIT", "limit deve ser um inteiro positivo")
			return
		}
		limit = parsed
	}

	attempts, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "HISTORY_ERROR", "Erro ao listar tentativas")
		return
	}

	if attempts == nil {
		attempts = []*entity.SendAttempt{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"attempts": attempts})
}
