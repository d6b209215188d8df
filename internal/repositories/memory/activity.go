package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/earnly/internal/models"
)

// ActivityRepository keeps the activity log in a slice in append order.
type ActivityRepository struct {
	mu   sync.RWMutex
	logs []models.ActivityLog
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, *entry)
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.ActivityLog, int, error) {
	r.mu.RLock()
	matched := []models.ActivityLog{}
	for _, l := range r.logs {
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.UserID != "" && l.UserID != filter.UserID {
			continue
		}
		matched = append(matched, l)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, filter.Page, filter.Limit), len(matched), nil
}

func (r *ActivityRepository) Clear(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.logs))
	r.logs = nil
	return n, nil
}

func (r *ActivityRepository) Count(ctx context.Context, action string, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, l := range r.logs {
		if action != "" && l.Action != action {
			continue
		}
		if !since.IsZero() && l.CreatedAt.Before(since) {
			continue
		}
		n++
	}
	return n, nil
}
