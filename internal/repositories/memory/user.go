package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// UserRepository keeps users in a map.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]models.User)}
}

// Create inserts a user; duplicate email or referral code is models.ErrInvalidState.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email || existing.ReferralCode == u.ReferralCode {
			return models.ErrInvalidState
		}
	}
	r.users[u.UserID] = *u
	return nil
}

func (r *UserRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.UserID == id })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ReferralCode == code })
}

func (r *UserRepository) update(id uuid.UUID, fn func(u *models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.ErrNotFound
	}
	fn(&u)
	r.users[id] = u
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.update(id, func(u *models.User) {
		u.LastLogin = at
		u.UpdatedAt = at
	})
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.update(id, func(u *models.User) {
		u.IsActive = active
		u.UpdatedAt = time.Now()
	})
}

func (r *UserRepository) MarkVerified(ctx context.Context, email, phone string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, u := range r.users {
		if (email != "" && u.Email == email) || (phone != "" && u.Phone == phone) {
			u.IsVerified = true
			u.UpdatedAt = time.Now()
			r.users[id] = u
			n++
		}
	}
	return n, nil
}

// List returns one page of users, newest first.
func (r *UserRepository) List(ctx context.Context, page, limit int) ([]models.User, int, error) {
	r.mu.RLock()
	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, page, limit), len(all), nil
}

func (r *UserRepository) Stats(ctx context.Context, dayStart time.Time) (models.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s models.UserStats
	for _, u := range r.users {
		s.Total++
		if u.IsActive {
			s.Active++
		}
		if !u.CreatedAt.Before(dayStart) {
			s.NewToday++
		}
	}
	return s, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	start := (page - 1) * limit
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
