package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
	"github.com/sbilibin2017/earnly/internal/rewards"
)

// WalletRepository loads and persists wallets.
type WalletRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) // Returns the wallet or models.ErrNotFound
	Save(ctx context.Context, w *models.Wallet) error                  // Inserts or replaces the wallet
}

// PlatformRewardRepository accumulates the platform's share of task rewards.
type PlatformRewardRepository interface {
	Add(ctx context.Context, amount float64) (float64, error) // Adds amount and returns the new total
	Total(ctx context.Context) (float64, error)               // Returns the accumulated total
}

// TxManager runs fn in one storage transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker serializes work on a key. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// EventPublisher emits wallet transactions and user notifications. It never fails the caller.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, txn models.Transaction)
	Notify(ctx context.Context, userID, event string, payload map[string]any)
}

func walletKey(userID uuid.UUID) string {
	return "wallet:" + userID.String()
}

// WalletService applies earning and spending rules to user wallets.
type WalletService struct {
	wallets  WalletRepository
	platform PlatformRewardRepository
	tx       TxManager
	locker   Locker
	activity ActivityRecorder
	events   EventPublisher
	now      func() time.Time
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	wallets WalletRepository,
	platform PlatformRewardRepository,
	tx TxManager,
	locker Locker,
	activity ActivityRecorder,
	events EventPublisher,
) *WalletService {
	return &WalletService{
		wallets:  wallets,
		platform: platform,
		tx:       tx,
		locker:   locker,
		activity: activity,
		events:   events,
		now:      time.Now,
	}
}

// loadWallet returns the user's wallet. Users that never earned get an empty one.
func loadWallet(ctx context.Context, repo WalletRepository, userID uuid.UUID) (*models.Wallet, error) {
	w, err := repo.Get(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return models.NewWallet(userID), nil
	}
	return w, err
}

// mutate applies fn to a copy of the wallet under the user's lock and saves
// the copy in one transaction. Nothing is persisted when fn fails.
func (s *WalletService) mutate(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, w *models.Wallet) error) (*models.Wallet, error) {
	unlock, err := s.locker.Lock(ctx, walletKey(userID))
	if err != nil {
		logger.Log.Errorw("failed to lock wallet", "userID", userID, "error", err)
		return nil, err
	}
	defer unlock()

	var updated *models.Wallet
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := loadWallet(ctx, s.wallets, userID)
		if err != nil {
			return err
		}

		next := current.Snapshot()
		if err := fn(ctx, next); err != nil {
			return err
		}
		next.UpdatedAt = s.now().UTC()

		if err := s.wallets.Save(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *WalletService) publish(ctx context.Context, userID uuid.UUID, operation string, bucket models.Bucket, amount float64) string {
	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     s.now().Unix(),
		Amount:        amount,
		UserID:        userID.String(),
		Operation:     operation,
		Bucket:        string(bucket),
	}
	s.events.PublishTransaction(ctx, txn)
	return txn.TransactionID
}

// GetBalance returns the user's balance.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error) {
	w, err := loadWallet(ctx, s.wallets, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return models.Balance{}, err
	}
	return w.Balance(), nil
}

// ClaimDailyBonus credits the daily bonus once per calendar day.
func (s *WalletService) ClaimDailyBonus(ctx context.Context, userID uuid.UUID) (float64, models.Balance, error) {
	amount, bucket := rewards.DailyBonusAmount()
	day := rewards.Day(s.now())

	w, err := s.mutate(ctx, userID, func(ctx context.Context, w *models.Wallet) error {
		if !rewards.CanClaimDailyBonus(w.LastBonusClaim, day) {
			return models.ErrAlreadyClaimed
		}
		if err := w.Credit(bucket, amount); err != nil {
			return err
		}
		w.LastBonusClaim = day
		return nil
	})
	if err != nil {
		if !errors.Is(err, models.ErrAlreadyClaimed) {
			logger.Log.Errorw("failed to claim daily bonus", "userID", userID, "error", err)
		}
		return 0, models.Balance{}, err
	}

	s.activity.Record(ctx, models.ActionDailyBonusClaimed, userID.String(), models.ActivityDetails{
		"amount": amount,
		"date":   day,
	})
	s.publish(ctx, userID, models.OperationCredit, bucket, amount)
	return amount, w.Balance(), nil
}

// CompleteTask splits a task reward between the user's task bucket and the platform.
func (s *WalletService) CompleteTask(ctx context.Context, userID uuid.UUID, taskID string, reward float64) (float64, models.Balance, error) {
	if reward <= 0 || math.IsNaN(reward) || math.IsInf(reward, 0) {
		return 0, models.Balance{}, models.ErrInvalidAmount
	}
	userShare, platformShare := rewards.TaskSplit(reward)

	w, err := s.mutate(ctx, userID, func(ctx context.Context, w *models.Wallet) error {
		if err := w.Credit(models.BucketTask, userShare); err != nil {
			return err
		}
		_, err := s.platform.Add(ctx, platformShare)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to complete task", "userID", userID, "taskID", taskID, "reward", reward, "error", err)
		return 0, models.Balance{}, err
	}

	s.activity.Record(ctx, models.ActionTaskCompleted, userID.String(), models.ActivityDetails{
		"taskId":        taskID,
		"reward":        reward,
		"userShare":     userShare,
		"platformShare": platformShare,
	})
	s.publish(ctx, userID, models.OperationCredit, models.BucketTask, userShare)
	return userShare, w.Balance(), nil
}

// CreditReferral pays the referral bonus to the referrer of a new user.
func (s *WalletService) CreditReferral(ctx context.Context, referrerID uuid.UUID, referredEmail string) error {
	amount, bucket := rewards.ReferralBonusAmount()

	_, err := s.mutate(ctx, referrerID, func(ctx context.Context, w *models.Wallet) error {
		return w.Credit(bucket, amount)
	})
	if err != nil {
		logger.Log.Errorw("failed to credit referral bonus", "referrerID", referrerID, "error", err)
		return err
	}

	s.activity.Record(ctx, models.ActionReferralBonus, referrerID.String(), models.ActivityDetails{
		"amount":       amount,
		"referredUser": referredEmail,
	})
	s.publish(ctx, referrerID, models.OperationCredit, bucket, amount)
	return nil
}

// Purchase spends amount from the wallet with a proportional debit and returns the transaction id.
func (s *WalletService) Purchase(ctx context.Context, userID uuid.UUID, amount float64, description string) (string, models.Balance, error) {
	w, err := s.mutate(ctx, userID, func(ctx context.Context, w *models.Wallet) error {
		return w.Debit(amount)
	})
	if err != nil {
		logger.Log.Errorw("failed to purchase", "userID", userID, "amount", amount, "error", err)
		return "", models.Balance{}, err
	}

	txID := s.publish(ctx, userID, models.OperationPurchase, "", amount)
	s.activity.Record(ctx, models.ActionPurchaseCompleted, userID.String(), models.ActivityDetails{
		"amount":        amount,
		"description":   description,
		"transactionId": txID,
	})
	return txID, w.Balance(), nil
}

// PlatformRewards returns the platform's accumulated share of task rewards.
func (s *WalletService) PlatformRewards(ctx context.Context) (float64, error) {
	return s.platform.Total(ctx)
}
