package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Activity log paging limits.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// ActivityRepository stores the append-only activity log.
type ActivityRepository interface {
	Append(ctx context.Context, entry *models.ActivityLog) error                                // Appends one entry
	List(ctx context.Context, filter models.ActivityFilter) ([]models.ActivityLog, int, error) // Returns a page, newest first, and the total count
	Clear(ctx context.Context) (int64, error)                                                  // Removes all entries
	Count(ctx context.Context, action string, since time.Time) (int, error)                    // Counts entries of action since a time
}

// ActivityRecorder records audit facts.
type ActivityRecorder interface {
	Record(ctx context.Context, action, userID string, details models.ActivityDetails)
}

// ActivityService writes and reads the activity log.
type ActivityService struct {
	repo ActivityRepository
	now  func() time.Time
}

// NewActivityService creates a new ActivityService.
func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo, now: time.Now}
}

// Record appends an entry. A failed write is logged and never fails the caller.
func (s *ActivityService) Record(ctx context.Context, action, userID string, details models.ActivityDetails) {
	entry := &models.ActivityLog{
		ID:        uuid.New(),
		Action:    action,
		UserID:    userID,
		Details:   details,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		logger.Log.Errorw("failed to record activity", "action", action, "userID", userID, "error", err)
	}
}

// List returns a page of the log and its pagination metadata.
func (s *ActivityService) List(ctx context.Context, filter models.ActivityFilter) ([]models.ActivityLog, models.Pagination, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list activity", "filter", filter, "error", err)
		return nil, models.Pagination{}, err
	}
	return logs, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Clear removes every entry and then records who cleared the log.
func (s *ActivityService) Clear(ctx context.Context, adminEmail string) (int64, error) {
	n, err := s.repo.Clear(ctx)
	if err != nil {
		logger.Log.Errorw("failed to clear activity", "admin", adminEmail, "error", err)
		return 0, err
	}
	s.Record(ctx, models.ActionLogsCleared, models.ActorAdmin, models.ActivityDetails{
		"clearedBy":    adminEmail,
		"clearedCount": n,
	})
	return n, nil
}

// Count counts entries of action recorded at or after since. An empty action counts every entry.
func (s *ActivityService) Count(ctx context.Context, action string, since time.Time) (int, error) {
	return s.repo.Count(ctx, action, since)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}
