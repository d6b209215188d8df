package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Payment reference prefixes tell webhook events apart.
const (
	ReferencePrefixSubscription = "SUB_"
	ReferencePrefixWithdrawal   = "WTH_"
)

// Payment purposes.
const (
	PurposeSubscription = "subscription"
	PurposeWithdrawal   = "withdrawal"
)

// PaymentGateway collects payments and lists payout banks.
type PaymentGateway interface {
	InitializePayment(ctx context.Context, email string, amount float64, reference string) (*models.PaymentInit, error)
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
	ListBanks(ctx context.Context) ([]models.Bank, error)
}

// BankCache caches the bank list.
type BankCache interface {
	Get(ctx context.Context) ([]models.Bank, error)
	Set(ctx context.Context, banks []models.Bank) error
}

// PaymentService wraps the payment gateway for collection flows and webhooks.
type PaymentService struct {
	gateway  PaymentGateway
	banks    BankCache
	activity ActivityRecorder
	secret   []byte
}

// NewPaymentService creates a new PaymentService. secret signs webhook payloads.
func NewPaymentService(gateway PaymentGateway, banks BankCache, activity ActivityRecorder, secret string) *PaymentService {
	return &PaymentService{gateway: gateway, banks: banks, activity: activity, secret: []byte(secret)}
}

// NewReference returns a fresh reference for the purpose.
func NewReference(purpose string) string {
	prefix := ReferencePrefixSubscription
	if purpose == PurposeWithdrawal {
		prefix = ReferencePrefixWithdrawal
	}
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Initialize opens a payment session. An empty reference gets a generated one.
func (s *PaymentService) Initialize(ctx context.Context, email string, amount float64, purpose, reference string) (*models.PaymentInit, error) {
	if email == "" || amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.Wrap(models.ErrInvalidInput, "email and a positive amount are required")
	}
	if reference == "" {
		reference = NewReference(purpose)
	}

	session, err := s.gateway.InitializePayment(ctx, email, amount, reference)
	if err != nil {
		logger.Log.Errorw("failed to initialize payment", "email", email, "reference", reference, "error", err)
		return nil, errors.Wrap(models.ErrTransferFailed, err.Error())
	}
	if session.Reference == "" {
		session.Reference = reference
	}

	s.activity.Record(ctx, models.ActionPaymentInitialized, email, models.ActivityDetails{
		"amount":    amount,
		"purpose":   purpose,
		"reference": session.Reference,
	})
	return session, nil
}

// Verify checks that the payment behind reference succeeded.
func (s *PaymentService) Verify(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	if reference == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "reference is required")
	}

	payment, err := s.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		logger.Log.Errorw("failed to verify payment", "reference", reference, "error", err)
		return nil, errors.Wrap(models.ErrTransferFailed, err.Error())
	}
	if !payment.Succeeded() {
		return nil, errors.Wrapf(models.ErrInvalidInput, "payment verification failed: %s", payment.Status)
	}

	s.activity.Record(ctx, models.ActionPaymentVerified, models.ActorSystem, models.ActivityDetails{
		"reference": reference,
		"amount":    payment.Amount,
	})
	return payment, nil
}

// Banks returns the payout banks, from cache when possible.
func (s *PaymentService) Banks(ctx context.Context) ([]models.Bank, error) {
	if banks, err := s.banks.Get(ctx); err == nil && len(banks) > 0 {
		return banks, nil
	}

	banks, err := s.gateway.ListBanks(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list banks", "error", err)
		return nil, errors.Wrap(models.ErrTransferFailed, err.Error())
	}
	if err := s.banks.Set(ctx, banks); err != nil {
		logger.Log.Errorw("failed to cache banks", "error", err)
	}
	return banks, nil
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string  `json:"reference"`
		Amount    float64 `json:"amount"`
		Status    string  `json:"status"`
	} `json:"data"`
}

// Sign returns the hex HMAC-SHA512 of body under the webhook secret.
func (s *PaymentService) Sign(body []byte) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// HandleWebhook authenticates a gateway event and records it.
// Unknown events are accepted and ignored.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	expected := s.Sign(body)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return errors.Wrap(models.ErrForbidden, "invalid webhook signature")
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errors.Wrap(models.ErrInvalidInput, err.Error())
	}

	ref := event.Data.Reference
	details := models.ActivityDetails{
		"event":     event.Event,
		"reference": ref,
		"amount":    event.Data.Amount / 100,
	}

	switch event.Event {
	case "charge.success":
		switch {
		case strings.HasPrefix(ref, ReferencePrefixSubscription):
			s.activity.Record(ctx, models.ActionSubscriptionPayment, models.ActorSystem, details)
		case strings.HasPrefix(ref, ReferencePrefixWithdrawal):
			s.activity.Record(ctx, models.ActionWithdrawalPayment, models.ActorSystem, details)
		}
	case "transfer.success", "transfer.failed", "transfer.reversed":
		details["status"] = event.Data.Status
		s.activity.Record(ctx, models.ActionTransferNotification, models.ActorSystem, details)
	default:
		logger.Log.Infow("ignoring webhook event", "event", event.Event, "reference", ref)
	}
	return nil
}
