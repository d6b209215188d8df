package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Broadcast message types.
const (
	BroadcastEmergencyMessage   = "emergency_message"
	BroadcastEmergencyDismissed = "emergency_dismissed"
)

// EmergencyRepository stores emergency messages.
type EmergencyRepository interface {
	Create(ctx context.Context, m *models.EmergencyMessage) error
	GetActive(ctx context.Context) (*models.EmergencyMessage, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

// Broadcaster pushes a message to every connected client.
type Broadcaster interface {
	Broadcast(msgType string, payload any) int
}

// EmergencyService sends site-wide notices.
type EmergencyService struct {
	repo     EmergencyRepository
	hub      Broadcaster
	activity ActivityRecorder
	now      func() time.Time
}

// NewEmergencyService creates a new EmergencyService.
func NewEmergencyService(repo EmergencyRepository, hub Broadcaster, activity ActivityRecorder) *EmergencyService {
	return &EmergencyService{repo: repo, hub: hub, activity: activity, now: time.Now}
}

// Send stores a message and pushes it to connected clients.
func (s *EmergencyService) Send(ctx context.Context, message, adminEmail string) (*models.EmergencyMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "message is required")
	}

	m := &models.EmergencyMessage{
		ID:        uuid.New(),
		Message:   message,
		Status:    models.EmergencySent,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		logger.Log.Errorw("failed to save emergency message", "error", err)
		return nil, err
	}

	delivered := s.hub.Broadcast(BroadcastEmergencyMessage, m)
	s.activity.Record(ctx, models.ActionEmergencySent, models.ActorAdmin, models.ActivityDetails{
		"messageId": m.ID.String(),
		"message":   m.Message,
		"sentBy":    adminEmail,
		"delivered": delivered,
	})
	return m, nil
}

// Active returns the latest message still in effect, or models.ErrNotFound.
func (s *EmergencyService) Active(ctx context.Context) (*models.EmergencyMessage, error) {
	return s.repo.GetActive(ctx)
}

// Dismiss withdraws a message.
func (s *EmergencyService) Dismiss(ctx context.Context, id uuid.UUID, adminEmail string) error {
	if err := s.repo.Dismiss(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to dismiss emergency message", "id", id, "error", err)
		}
		return err
	}

	s.hub.Broadcast(BroadcastEmergencyDismissed, map[string]string{"id": id.String()})
	s.activity.Record(ctx, models.ActionEmergencyDismissed, models.ActorAdmin, models.ActivityDetails{
		"messageId":   id.String(),
		"dismissedBy": adminEmail,
	})
	return nil
}
