package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// WalletRepository keeps wallets in a map. Stored values are copies.
type WalletRepository struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]models.Wallet
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{wallets: make(map[uuid.UUID]models.Wallet)}
}

func (r *WalletRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &w, nil
}

func (r *WalletRepository) Save(ctx context.Context, w *models.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wallets[w.UserID] = *w
	return nil
}
