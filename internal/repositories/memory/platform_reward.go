package memory

import (
	"context"
	"sync"
)

// PlatformRewardRepository accumulates the platform's task share.
type PlatformRewardRepository struct {
	mu    sync.Mutex
	total float64
}

func NewPlatformRewardRepository() *PlatformRewardRepository {
	return &PlatformRewardRepository{}
}

func (r *PlatformRewardRepository) Add(ctx context.Context, amount float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total += amount
	return r.total, nil
}

func (r *PlatformRewardRepository) Total(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.total, nil
}
