package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// WithdrawalRepository keeps withdrawal requests in a map.
type WithdrawalRepository struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*models.WithdrawalRequest
}

func NewWithdrawalRepository() *WithdrawalRepository {
	return &WithdrawalRepository{requests: make(map[uuid.UUID]*models.WithdrawalRequest)}
}

func (r *WithdrawalRepository) Create(ctx context.Context, req *models.WithdrawalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; ok {
		return models.ErrInvalidState
	}
	r.requests[req.ID] = req.Snapshot()
	return nil
}

func (r *WithdrawalRepository) Get(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return req.Snapshot(), nil
}

func (r *WithdrawalRepository) Save(ctx context.Context, req *models.WithdrawalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; !ok {
		return models.ErrNotFound
	}
	r.requests[req.ID] = req.Snapshot()
	return nil
}

func (r *WithdrawalRepository) List(ctx context.Context, filter models.WithdrawalFilter) ([]models.WithdrawalRequest, error) {
	r.mu.RLock()
	out := []models.WithdrawalRequest{}
	for _, req := range r.requests {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.UserID != uuid.Nil && req.UserID != filter.UserID {
			continue
		}
		out = append(out, *req.Snapshot())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *WithdrawalRepository) CountPending(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, req := range r.requests {
		if req.Status == models.WithdrawalPending {
			n++
		}
	}
	return n, nil
}
