package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Bucket names one of the independent earning sub-balances of a wallet.
type Bucket string

// Supported buckets
const (
	BucketTask       Bucket = "task"
	BucketDailyBonus Bucket = "dailyBonus"
	BucketReferral   Bucket = "referral"
)

const (
	// Buckets left below dust after a proportional debit are zeroed.
	dust = 1e-12
	// A debit within fullDebitTolerance of the total empties the wallet.
	fullDebitTolerance = 1e-9
)

// Wallet is the segmented balance owned by exactly one user.
type Wallet struct {
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                   // Owner of the wallet
	Task           float64   `json:"task" db:"task"`                         // Earned from completed tasks
	DailyBonus     float64   `json:"daily_bonus" db:"daily_bonus"`           // Earned from daily bonus claims
	Referral       float64   `json:"referral" db:"referral"`                 // Earned from referred signups
	Today          float64   `json:"today" db:"today"`                       // Earned today, display only
	Lifetime       float64   `json:"lifetime" db:"lifetime"`                 // Earned ever, never decreases
	LastBonusClaim string    `json:"last_bonus_claim" db:"last_bonus_claim"` // Calendar date of the last daily bonus claim
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`             // Last mutation timestamp
}

// NewWallet returns an empty wallet for the given user.
func NewWallet(userID uuid.UUID) *Wallet {
	return &Wallet{UserID: userID}
}

// TotalBalance returns the spendable balance: the sum of the three buckets.
func (w *Wallet) TotalBalance() float64 {
	return w.Task + w.DailyBonus + w.Referral
}

// Credit adds amount to the named bucket and to the today and lifetime counters.
func (w *Wallet) Credit(bucket Bucket, amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}

	switch bucket {
	case BucketTask:
		w.Task += amount
	case BucketDailyBonus:
		w.DailyBonus += amount
	case BucketReferral:
		w.Referral += amount
	default:
		return ErrUnknownBucket
	}

	w.Today += amount
	w.Lifetime += amount
	return nil
}

// Debit removes amount from the wallet, spreading it across the buckets in
// proportion to each bucket's share of the total. The wallet is left
// untouched when an error is returned.
func (w *Wallet) Debit(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}

	total := w.TotalBalance()
	if total <= 0 || amount > total+fullDebitTolerance {
		return ErrInsufficientFunds
	}

	if math.Abs(total-amount) <= fullDebitTolerance {
		w.Task, w.DailyBonus, w.Referral = 0, 0, 0
		return nil
	}

	ratio := amount / total
	w.Task = clamp(w.Task - w.Task*ratio)
	w.DailyBonus = clamp(w.DailyBonus - w.DailyBonus*ratio)
	w.Referral = clamp(w.Referral - w.Referral*ratio)
	return nil
}

// Snapshot returns an independent copy of the wallet.
func (w *Wallet) Snapshot() *Wallet {
	c := *w
	return &c
}

func clamp(v float64) float64 {
	if v < dust {
		return 0
	}
	return v
}

// Balance is the read model returned to clients.
type Balance struct {
	Task       float64 `json:"task"`
	DailyBonus float64 `json:"dailyBonus"`
	Referral   float64 `json:"referral"`
	Total      float64 `json:"total"`
	Today      float64 `json:"today"`
	Lifetime   float64 `json:"lifetime"`
}

// Balance builds the client view of the wallet.
func (w *Wallet) Balance() Balance {
	return Balance{
		Task:       w.Task,
		DailyBonus: w.DailyBonus,
		Referral:   w.Referral,
		Total:      w.TotalBalance(),
		Today:      w.Today,
		Lifetime:   w.Lifetime,
	}
}
