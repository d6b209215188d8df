package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// SubscriptionRepository stores channel subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, s *models.Subscription) error
	ExpireActive(ctx context.Context, userID uuid.UUID) error
	GetActive(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Subscription, error)
	Revenue(ctx context.Context) (float64, int, error)
}

// ChannelRepository lists streamable channels.
type ChannelRepository interface {
	List(ctx context.Context) ([]models.Channel, error)
	Get(ctx context.Context, id int64) (*models.Channel, error)
}

// PaymentVerifier confirms a collected payment with the gateway.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
}

// SubscriptionRevenue summarises subscription sales.
type SubscriptionRevenue struct {
	Total         float64 `json:"totalRevenue"`
	Subscriptions int     `json:"totalSubscriptions"`
	Currency      string  `json:"currency"`
}

// SubscriptionService sells monthly channel bundles.
type SubscriptionService struct {
	subs     SubscriptionRepository
	channels ChannelRepository
	payments PaymentVerifier
	tx       TxManager
	activity ActivityRecorder
	now      func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(
	subs SubscriptionRepository,
	channels ChannelRepository,
	payments PaymentVerifier,
	tx TxManager,
	activity ActivityRecorder,
) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		channels: channels,
		payments: payments,
		tx:       tx,
		activity: activity,
		now:      time.Now,
	}
}

// Plans returns the plans cheapest first.
func (s *SubscriptionService) Plans() []models.Plan {
	plans := make([]models.Plan, 0, len(models.Plans))
	for _, p := range models.Plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Price < plans[j].Price })
	return plans
}

// Channels lists every channel.
func (s *SubscriptionService) Channels(ctx context.Context) ([]models.Channel, error) {
	return s.channels.List(ctx)
}

// Subscribe starts a one-month subscription paid by reference. Previous
// subscriptions of the user are expired in the same transaction.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, planName string, channels []int64, reference string) (*models.Subscription, error) {
	plan, ok := models.Plans[planName]
	if !ok {
		return nil, errors.Wrapf(models.ErrInvalidInput, "invalid plan %q", planName)
	}
	if reference == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "payment reference is required")
	}

	selected, err := s.selectChannels(ctx, channels, plan)
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.VerifyPayment(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to verify subscription payment", "userID", userID, "reference", reference, "error", err)
		return nil, errors.Wrap(models.ErrTransferFailed, err.Error())
	}
	if !payment.Succeeded() || payment.Amount < plan.Price {
		return nil, errors.Wrapf(models.ErrInvalidInput, "payment %s not valid for plan %s", reference, plan.Name)
	}

	now := s.now().UTC()
	sub := &models.Subscription{
		ID:               uuid.New(),
		UserID:           userID,
		Plan:             plan.Name,
		Price:            plan.Price,
		SelectedChannels: selected,
		StartDate:        now,
		EndDate:          now.AddDate(0, 1, 0),
		Status:           models.SubscriptionActive,
		PaymentReference: reference,
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.subs.ExpireActive(ctx, userID); err != nil {
			return err
		}
		return s.subs.Create(ctx, sub)
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			return nil, errors.Wrap(models.ErrAlreadyExists, "payment reference already used")
		}
		logger.Log.Errorw("failed to create subscription", "userID", userID, "error", err)
		return nil, err
	}

	s.activity.Record(ctx, models.ActionSubscriptionCreated, userID.String(), models.ActivityDetails{
		"plan":      plan.Name,
		"price":     plan.Price,
		"channels":  len(selected),
		"reference": reference,
	})
	return sub, nil
}

func (s *SubscriptionService) selectChannels(ctx context.Context, ids []int64, plan models.Plan) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	selected := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		selected = append(selected, id)
	}
	if len(selected) > plan.MaxChannels {
		return nil, errors.Wrapf(models.ErrInvalidInput, "plan %s allows at most %d channels", plan.Name, plan.MaxChannels)
	}

	for _, id := range selected {
		if _, err := s.channels.Get(ctx, id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, errors.Wrapf(models.ErrInvalidInput, "unknown channel %d", id)
			}
			return nil, err
		}
	}
	return selected, nil
}

// Active returns the user's current subscription, or models.ErrNotFound.
func (s *SubscriptionService) Active(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	return s.subs.GetActive(ctx, userID, s.now().UTC())
}

// HasAccess reports whether the user may watch the channel.
func (s *SubscriptionService) HasAccess(ctx context.Context, userID uuid.UUID, channelID int64) (bool, error) {
	sub, err := s.Active(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return sub.HasAccess(channelID, s.now().UTC()), nil
}

// Revenue sums active subscription prices and counts every subscription sold.
func (s *SubscriptionService) Revenue(ctx context.Context) (SubscriptionRevenue, error) {
	total, count, err := s.subs.Revenue(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get subscription revenue", "error", err)
		return SubscriptionRevenue{}, err
	}
	return SubscriptionRevenue{Total: total, Subscriptions: count, Currency: CurrencyNGN}, nil
}
