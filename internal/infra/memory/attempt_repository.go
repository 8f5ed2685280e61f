package memory

import (
	"context"
	"sync"

	"github.com/xavierca1/template-sender/internal/entity"
)

// AttemptRepository guarda as últimas tentativas em memória. O sistema não
// tem persistência: reiniciou o processo, zerou o histórico.
type AttemptRepository struct {
	mu       sync.Mutex
	attempts []*entity.SendAttempt
	limit    int
}

func NewAttemptRepository(limit int) *AttemptRepository {
	if limit <= 0 {
		limit = 50
	}
	return &AttemptRepository{limit: limit}
}

func (r *AttemptRepository) Save(ctx context.Context, attempt *entity.SendAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts = append(r.attempts, attempt)
	if len(r.attempts) > r.limit {
		r.attempts = r.attempts[len(r.attempts)-r.limit:]
	}
	return nil
}

// ListRecent devolve as tentativas mais recentes primeiro
func (r *AttemptRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SendAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.attempts) {
		limit = len(r.attempts)
	}

	out := make([]*entity.SendAttempt, 0, limit)
	for i := len(r.attempts) - 1; i >= len(r.attempts)-limit; i-- {
		out = append(out, r.attempts[i])
	}
	return out, nil
}
