package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/earnly/internal/models"
)

// SubscriptionRepository keeps subscriptions in a slice.
type SubscriptionRepository struct {
	mu   sync.RWMutex
	subs []models.Subscription
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

func cloneSubscription(s models.Subscription) models.Subscription {
	s.SelectedChannels = append(pq.Int64Array(nil), s.SelectedChannels...)
	return s
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.subs {
		if existing.PaymentReference == s.PaymentReference {
			return models.ErrInvalidState
		}
	}
	r.subs = append(r.subs, cloneSubscription(*s))
	return nil
}

func (r *SubscriptionRepository) ExpireActive(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.subs {
		if r.subs[i].UserID == userID && r.subs[i].Status == models.SubscriptionActive {
			r.subs[i].Status = models.SubscriptionExpired
		}
	}
	return nil
}

func (r *SubscriptionRepository) GetActive(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *models.Subscription
	for _, s := range r.subs {
		if s.UserID != userID || !s.IsCurrent(now) {
			continue
		}
		if best == nil || s.EndDate.After(best.EndDate) {
			c := cloneSubscription(s)
			best = &c
		}
	}
	if best == nil {
		return nil, models.ErrNotFound
	}
	return best, nil
}

func (r *SubscriptionRepository) Revenue(ctx context.Context) (float64, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, s := range r.subs {
		if s.Status == models.SubscriptionActive {
			total += s.Price
		}
	}
	return total, len(r.subs), nil
}
