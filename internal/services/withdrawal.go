package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
	"github.com/sbilibin2017/earnly/internal/rewards"
)

// WithdrawalRepository stores withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, req *models.WithdrawalRequest) error                              // Inserts a new request
	Get(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error)                      // Returns the request or models.ErrNotFound
	Save(ctx context.Context, req *models.WithdrawalRequest) error                                // Persists a state change
	List(ctx context.Context, filter models.WithdrawalFilter) ([]models.WithdrawalRequest, error) // Lists requests, newest first
	CountPending(ctx context.Context) (int, error)                                                // Counts pending requests
}

// PaymentProvider moves money to a user's bank account.
type PaymentProvider interface {
	CreateRecipient(ctx context.Context, name, accountNumber, bankCode string) (string, error)   // Returns a recipient code
	Transfer(ctx context.Context, amountKobo int64, recipientCode, reason string) (string, error) // Returns the transfer reference
}

// RateResolver resolves the payout exchange rate.
type RateResolver interface {
	NairaPerDollar(ctx context.Context) float64
}

func withdrawalKey(id uuid.UUID) string {
	return "withdrawal:" + id.String()
}

// payoutKey serializes payouts of one user so two transfers never draw on the same balance.
func payoutKey(userID uuid.UUID) string {
	return "payout:" + userID.String()
}

// WithdrawalService runs the withdrawal workflow: pending requests are either
// paid out and approved, or denied. The wallet is debited only after the
// provider confirmed the transfer or an admin approved the request.
type WithdrawalService struct {
	withdrawals WithdrawalRepository
	wallets     WalletRepository
	tx          TxManager
	locker      Locker
	provider    PaymentProvider
	rates       RateResolver
	activity    ActivityRecorder
	events      EventPublisher
	timeout     time.Duration
	now         func() time.Time
}

// NewWithdrawalService creates a new WithdrawalService. Provider calls are bounded by timeout.
func NewWithdrawalService(
	withdrawals WithdrawalRepository,
	wallets WalletRepository,
	tx TxManager,
	locker Locker,
	provider PaymentProvider,
	rates RateResolver,
	activity ActivityRecorder,
	events EventPublisher,
	timeout time.Duration,
) *WithdrawalService {
	return &WithdrawalService{
		withdrawals: withdrawals,
		wallets:     wallets,
		tx:          tx,
		locker:      locker,
		provider:    provider,
		rates:       rates,
		activity:    activity,
		events:      events,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Request validates and stores a pending withdrawal. The wallet is not debited.
func (s *WithdrawalService) Request(ctx context.Context, userID uuid.UUID, amount float64, bank models.BankDetails) (*models.WithdrawalRequest, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < rewards.MinimumWithdrawal {
		return nil, models.ErrInvalidAmount
	}
	if bank.AccountNumber == "" || bank.BankCode == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "bank code and account number are required")
	}

	available, err := s.available(ctx, userID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if amount > available {
		return nil, models.ErrInsufficientFunds
	}

	req := models.NewWithdrawalRequest(userID, amount, bank, s.now().UTC())
	if err := s.withdrawals.Create(ctx, req); err != nil {
		logger.Log.Errorw("failed to create withdrawal request", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	s.activity.Record(ctx, models.ActionWithdrawalRequested, userID.String(), models.ActivityDetails{
		"requestId": req.ID.String(),
		"amount":    amount,
		"bankName":  bank.BankName,
	})
	return req, nil
}

// Withdraw requests a withdrawal and immediately pays it out.
// When the payout fails the request stays pending for an admin to retry.
func (s *WithdrawalService) Withdraw(ctx context.Context, userID uuid.UUID, amount float64, bank models.BankDetails) (*models.WithdrawalRequest, error) {
	req, err := s.Request(ctx, userID, amount, bank)
	if err != nil {
		return nil, err
	}
	return s.Process(ctx, req.ID)
}

// Retry pays out a pending request again. A request whose transfer was
// already sent is rejected; it can only be approved or denied.
func (s *WithdrawalService) Retry(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	return s.Process(ctx, id)
}

// Process pays a pending request out through the provider, then debits the
// wallet and approves the request in one transaction. The user's payout lock
// is held from the balance check until the debit.
func (s *WithdrawalService) Process(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	unlock, err := s.locker.Lock(ctx, withdrawalKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Reference != nil {
		return nil, errors.Wrap(models.ErrInvalidState, "transfer already sent, approve or deny the request")
	}

	unlockPayout, err := s.locker.Lock(ctx, payoutKey(req.UserID))
	if err != nil {
		return nil, err
	}
	defer unlockPayout()

	available, err := s.available(ctx, req.UserID, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Amount > available {
		return nil, models.ErrInsufficientFunds
	}

	rate := s.rates.NairaPerDollar(ctx)
	amountKobo := int64(math.Round(req.Amount * rate * 100))

	reference, err := s.transfer(ctx, req, amountKobo)
	if err != nil {
		logger.Log.Errorw("withdrawal transfer failed", "requestId", id, "userID", req.UserID, "amountKobo", amountKobo, "error", err)
		s.activity.Record(ctx, models.ActionWithdrawalFailed, req.UserID.String(), models.ActivityDetails{
			"requestId": id.String(),
			"amount":    req.Amount,
			"error":     err.Error(),
		})
		return nil, errors.Wrap(models.ErrTransferFailed, err.Error())
	}

	approved, err := s.debitAndApprove(ctx, req, reference)
	if errors.Is(err, models.ErrInsufficientFunds) {
		// The money has left; keep the reference so the payout can be reconciled.
		logger.Log.Errorw("transfer completed but wallet could not be debited", "requestId", id, "userID", req.UserID, "reference", reference)
		held := req.Snapshot()
		held.Reference = &reference
		held.UpdatedAt = s.now().UTC()
		if err := s.withdrawals.Save(ctx, held); err != nil {
			logger.Log.Errorw("failed to save transfer reference", "requestId", id, "reference", reference, "error", err)
		}
		return nil, models.ErrInsufficientFunds
	}
	if err != nil {
		logger.Log.Errorw("failed to complete withdrawal", "requestId", id, "reference", reference, "error", err)
		return nil, err
	}

	s.completed(ctx, approved, models.ActionWithdrawalCompleted, models.ActivityDetails{
		"requestId": id.String(),
		"amount":    req.Amount,
		"amountNGN": float64(amountKobo) / 100,
		"rate":      rate,
		"reference": reference,
	})
	return approved, nil
}

// transfer runs the provider calls under the configured timeout.
func (s *WithdrawalService) transfer(ctx context.Context, req *models.WithdrawalRequest, amountKobo int64) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	recipient, err := s.provider.CreateRecipient(ctx, req.AccountName, req.AccountNumber, req.BankCode)
	if err != nil {
		return "", errors.Wrap(err, "create recipient")
	}

	reference, err := s.provider.Transfer(ctx, amountKobo, recipient, "Withdrawal "+req.ID.String())
	if err != nil {
		return "", errors.Wrap(err, "transfer")
	}
	return reference, nil
}

// Approve debits the wallet and approves a pending request without a payout.
// A request that already carries a transfer reference keeps it.
func (s *WithdrawalService) Approve(ctx context.Context, id uuid.UUID, adminEmail string) (*models.WithdrawalRequest, error) {
	unlock, err := s.locker.Lock(ctx, withdrawalKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	unlockPayout, err := s.locker.Lock(ctx, payoutKey(req.UserID))
	if err != nil {
		return nil, err
	}
	defer unlockPayout()

	if req.Reference == nil {
		available, err := s.available(ctx, req.UserID, req.ID)
		if err != nil {
			return nil, err
		}
		if req.Amount > available {
			return nil, models.ErrInsufficientFunds
		}
	}

	approved, err := s.debitAndApprove(ctx, req, "")
	if err != nil {
		if !errors.Is(err, models.ErrInsufficientFunds) {
			logger.Log.Errorw("failed to approve withdrawal", "requestId", id, "error", err)
		}
		return nil, err
	}

	s.completed(ctx, approved, models.ActionWithdrawalApproved, models.ActivityDetails{
		"requestId":  id.String(),
		"amount":     req.Amount,
		"approvedBy": adminEmail,
	})
	return approved, nil
}

// Deny closes a pending request without touching the wallet.
func (s *WithdrawalService) Deny(ctx context.Context, id uuid.UUID, reason, adminEmail string) (*models.WithdrawalRequest, error) {
	unlock, err := s.locker.Lock(ctx, withdrawalKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	denied := req.Snapshot()
	if err := denied.Deny(reason, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.withdrawals.Save(ctx, denied); err != nil {
		logger.Log.Errorw("failed to deny withdrawal", "requestId", id, "error", err)
		return nil, err
	}

	s.activity.Record(ctx, models.ActionWithdrawalDenied, denied.UserID.String(), models.ActivityDetails{
		"requestId": id.String(),
		"amount":    denied.Amount,
		"reason":    *denied.DenyReason,
		"deniedBy":  adminEmail,
	})
	s.notifyStatus(ctx, denied)
	return denied, nil
}

// List returns requests with the given status, or all requests when status is empty.
func (s *WithdrawalService) List(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.List(ctx, models.WithdrawalFilter{Status: status})
}

// ListForUser returns the user's requests.
func (s *WithdrawalService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.List(ctx, models.WithdrawalFilter{UserID: userID})
}

// CountPending returns the number of requests awaiting a decision.
func (s *WithdrawalService) CountPending(ctx context.Context) (int, error) {
	return s.withdrawals.CountPending(ctx)
}

// available returns the wallet total minus pending requests of the user whose
// transfer was already sent but not yet debited. exclude is left out of the sum.
func (s *WithdrawalService) available(ctx context.Context, userID, exclude uuid.UUID) (float64, error) {
	w, err := loadWallet(ctx, s.wallets, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return 0, err
	}

	pending, err := s.withdrawals.List(ctx, models.WithdrawalFilter{Status: models.WithdrawalPending, UserID: userID})
	if err != nil {
		logger.Log.Errorw("failed to list pending withdrawals", "userID", userID, "error", err)
		return 0, err
	}

	total := w.TotalBalance()
	for _, r := range pending {
		if r.Reference != nil && r.ID != exclude {
			total -= r.Amount
		}
	}
	return total, nil
}

func (s *WithdrawalService) pending(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	req, err := s.withdrawals.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to get withdrawal request", "requestId", id, "error", err)
		}
		return nil, err
	}
	if req.Status != models.WithdrawalPending {
		return nil, models.ErrInvalidState
	}
	return req, nil
}

// debitAndApprove debits the wallet under the owner's lock and approves req.
// Both changes are saved in one transaction or not at all.
func (s *WithdrawalService) debitAndApprove(ctx context.Context, req *models.WithdrawalRequest, reference string) (*models.WithdrawalRequest, error) {
	unlock, err := s.locker.Lock(ctx, walletKey(req.UserID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var approved *models.WithdrawalRequest
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := loadWallet(ctx, s.wallets, req.UserID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		next := current.Snapshot()
		if err := next.Debit(req.Amount); err != nil {
			return err
		}
		next.UpdatedAt = now

		updated := req.Snapshot()
		if err := updated.Approve(reference, now); err != nil {
			return err
		}

		if err := s.wallets.Save(ctx, next); err != nil {
			return err
		}
		if err := s.withdrawals.Save(ctx, updated); err != nil {
			return err
		}
		approved = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

func (s *WithdrawalService) completed(ctx context.Context, req *models.WithdrawalRequest, action string, details models.ActivityDetails) {
	s.activity.Record(ctx, action, req.UserID.String(), details)
	s.events.PublishTransaction(ctx, models.Transaction{
		TransactionID: req.ID.String(),
		Timestamp:     s.now().Unix(),
		Amount:        req.Amount,
		UserID:        req.UserID.String(),
		Operation:     models.OperationWithdraw,
	})
	s.notifyStatus(ctx, req)
}

func (s *WithdrawalService) notifyStatus(ctx context.Context, req *models.WithdrawalRequest) {
	payload := map[string]any{
		"requestId": req.ID.String(),
		"amount":    req.Amount,
		"status":    string(req.Status),
	}
	if req.Reference != nil {
		payload["reference"] = *req.Reference
	}
	if req.DenyReason != nil {
		payload["reason"] = *req.DenyReason
	}
	s.events.Notify(ctx, req.UserID.String(), models.EventWithdrawalStatus, payload)
}
