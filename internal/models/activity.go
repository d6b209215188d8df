package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Activity actions recorded in the log.
const (
	ActionUserSignup             = "USER_SIGNUP"
	ActionLoginSuccess           = "LOGIN_SUCCESS"
	ActionLoginFailed            = "LOGIN_FAILED"
	ActionDailyBonusClaimed      = "DAILY_BONUS_CLAIMED"
	ActionTaskCompleted          = "TASK_COMPLETED"
	ActionPurchaseCompleted      = "PURCHASE_COMPLETED"
	ActionReferralBonus          = "REFERRAL_BONUS"
	ActionWithdrawalRequested    = "WITHDRAWAL_REQUESTED"
	ActionWithdrawalCompleted    = "WITHDRAWAL_COMPLETED"
	ActionWithdrawalFailed       = "WITHDRAWAL_TRANSFER_FAILED"
	ActionWithdrawalApproved     = "WITHDRAWAL_APPROVED"
	ActionWithdrawalDenied       = "WITHDRAWAL_DENIED"
	ActionUserStatusChanged      = "USER_STATUS_CHANGED"
	ActionLogsCleared            = "LOGS_CLEARED"
	ActionEmergencySent          = "EMERGENCY_MESSAGE_SENT"
	ActionEmergencyDismissed     = "EMERGENCY_MESSAGE_DISMISSED"
	ActionAdminAdded             = "ADMIN_ADDED"
	ActionAdminRemoved           = "ADMIN_REMOVED"
	ActionAdminSuspended         = "ADMIN_SUSPENDED"
	ActionAdminRestored          = "ADMIN_RESTORED"
	ActionAdminDeleted           = "ADMIN_DELETED"
	ActionAdminLoginAttempt      = "ADMIN_LOGIN_ATTEMPT"
	ActionVerificationCodeSent   = "VERIFICATION_CODE_SENT"
	ActionVerificationSuccess    = "VERIFICATION_SUCCESS"
	ActionVerificationFailed     = "VERIFICATION_FAILED"
	ActionPaymentInitialized     = "PAYMENT_INITIALIZED"
	ActionPaymentVerified        = "PAYMENT_VERIFIED"
	ActionSubscriptionCreated    = "SUBSCRIPTION_CREATED"
	ActionSubscriptionPayment    = "SUBSCRIPTION_PAYMENT"
	ActionWithdrawalPayment      = "WITHDRAWAL_PAYMENT"
	ActionTransferNotification   = "TRANSFER_NOTIFICATION"
	ActorSystem                  = "system"
	ActorAdmin                   = "admin"
)

// ActivityDetails is free-form context attached to an activity entry.
type ActivityDetails map[string]any

// Value implements driver.Valuer, storing details as JSON.
func (d ActivityDetails) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *ActivityDetails) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = ActivityDetails{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported activity details type %T", src)
	}
	out := ActivityDetails{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*d = out
	return nil
}

// ActivityLog is an append-only audit fact.
type ActivityLog struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Action    string          `json:"action" db:"action"`
	UserID    string          `json:"userId" db:"user_id"`
	Details   ActivityDetails `json:"details" db:"details"`
	CreatedAt time.Time       `json:"timestamp" db:"created_at"`
}

// Pagination describes a page of a listing.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasPrev     bool `json:"hasPrev"`
	HasNext     bool `json:"hasNext"`
}

// NewPagination computes page metadata for a listing of total items.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  pages,
		HasPrev:     page > 1,
		HasNext:     page*limit < total,
	}
}

// ActivityFilter selects a page of the activity log. Empty fields match everything.
type ActivityFilter struct {
	Page   int
	Limit  int
	Action string
	UserID string
}
