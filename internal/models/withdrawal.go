package models

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request.
type WithdrawalStatus string

// Withdrawal states. Approved and denied are terminal.
const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalDenied   WithdrawalStatus = "denied"
)

// DefaultDenyReason is recorded when an admin denies without a reason.
const DefaultDenyReason = "No reason provided"

// BankDetails is the payout destination of a withdrawal.
type BankDetails struct {
	BankName      string `json:"bankName" db:"bank_name"`
	BankCode      string `json:"bankCode" db:"bank_code"`
	AccountNumber string `json:"accountNumber" db:"account_number"`
	AccountName   string `json:"accountName" db:"account_name"`
}

// WithdrawalRequest is a user's request to move funds out of the wallet.
type WithdrawalRequest struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"userId" db:"user_id"`
	Amount float64   `json:"amount" db:"amount"`
	BankDetails
	Status        WithdrawalStatus `json:"status" db:"status"`
	DenyReason    *string          `json:"denyReason,omitempty" db:"deny_reason"`
	Reference     *string          `json:"reference,omitempty" db:"reference"`
	ProcessedDate *time.Time       `json:"processedDate,omitempty" db:"processed_date"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
}

// NewWithdrawalRequest creates a pending request.
func NewWithdrawalRequest(userID uuid.UUID, amount float64, bank BankDetails, now time.Time) *WithdrawalRequest {
	return &WithdrawalRequest{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		BankDetails: bank,
		Status:      WithdrawalPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Approve moves a pending request to approved.
func (r *WithdrawalRequest) Approve(reference string, at time.Time) error {
	if r.Status != WithdrawalPending {
		return ErrInvalidState
	}
	r.Status = WithdrawalApproved
	if reference != "" {
		r.Reference = &reference
	}
	r.ProcessedDate = &at
	r.UpdatedAt = at
	return nil
}

// Deny moves a pending request to denied with the given reason.
func (r *WithdrawalRequest) Deny(reason string, at time.Time) error {
	if r.Status != WithdrawalPending {
		return ErrInvalidState
	}
	if reason == "" {
		reason = DefaultDenyReason
	}
	r.Status = WithdrawalDenied
	r.DenyReason = &reason
	r.ProcessedDate = &at
	r.UpdatedAt = at
	return nil
}

// Snapshot returns a copy that does not share pointers with r.
func (r *WithdrawalRequest) Snapshot() *WithdrawalRequest {
	c := *r
	if r.DenyReason != nil {
		v := *r.DenyReason
		c.DenyReason = &v
	}
	if r.Reference != nil {
		v := *r.Reference
		c.Reference = &v
	}
	if r.ProcessedDate != nil {
		v := *r.ProcessedDate
		c.ProcessedDate = &v
	}
	return &c
}

// WithdrawalFilter narrows a withdrawal listing. Zero values match everything.
type WithdrawalFilter struct {
	Status WithdrawalStatus
	UserID uuid.UUID
}
