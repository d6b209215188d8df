package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// EmergencyRepository keeps broadcast messages in a slice.
type EmergencyRepository struct {
	mu       sync.RWMutex
	messages []models.EmergencyMessage
}

func NewEmergencyRepository() *EmergencyRepository {
	return &EmergencyRepository{}
}

func (r *EmergencyRepository) Create(ctx context.Context, m *models.EmergencyMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *m)
	return nil
}

// GetActive returns the most recent message still in sent state.
func (r *EmergencyRepository) GetActive(ctx context.Context) (*models.EmergencyMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.EmergencyMessage
	for i := range r.messages {
		m := r.messages[i]
		if m.Status != models.EmergencySent {
			continue
		}
		if latest == nil || !m.CreatedAt.Before(latest.CreatedAt) {
			latest = &m
		}
	}
	if latest == nil {
		return nil, models.ErrNotFound
	}
	return latest, nil
}

func (r *EmergencyRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Status = models.EmergencyDismissed
			return nil
		}
	}
	return models.ErrNotFound
}
