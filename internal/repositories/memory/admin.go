package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// AdminRepository keeps admins in a map.
type AdminRepository struct {
	mu     sync.RWMutex
	admins map[uuid.UUID]models.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{admins: make(map[uuid.UUID]models.Admin)}
}

func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return models.ErrInvalidState
		}
	}
	r.admins[a.ID] = *a
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.Email == email {
			out := a
			return &out, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	r.mu.RLock()
	out := make([]models.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *AdminRepository) Save(ctx context.Context, a *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[a.ID]; !ok {
		return models.ErrNotFound
	}
	r.admins[a.ID] = *a
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.admins, id)
	return nil
}
