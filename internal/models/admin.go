package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AdminStatus is the state of an admin account.
type AdminStatus string

// Admin states
const (
	AdminActive    AdminStatus = "active"
	AdminSuspended AdminStatus = "suspended"
	AdminRemoved   AdminStatus = "removed"
)

// Admin grants console access to the user with the same email.
type Admin struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Email        string      `json:"email" db:"email"`
	Status       AdminStatus `json:"status" db:"status"`
	SuspendUntil *time.Time  `json:"suspendUntil,omitempty" db:"suspend_until"`
	CreatedAt    time.Time   `json:"addedDate" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

// IsActive reports whether the admin may use the console at now.
// A suspension that has run out counts as active.
func (a *Admin) IsActive(now time.Time) bool {
	switch a.Status {
	case AdminActive:
		return true
	case AdminSuspended:
		return a.SuspendUntil != nil && !now.Before(*a.SuspendUntil)
	default:
		return false
	}
}

// SuspendUntil returns the end of a suspension of amount units starting at now.
func SuspendUntil(now time.Time, unit string, amount int) (time.Time, error) {
	if amount <= 0 {
		return time.Time{}, fmt.Errorf("suspension amount must be positive: %d", amount)
	}
	switch unit {
	case "minutes":
		return now.Add(time.Duration(amount) * time.Minute), nil
	case "hours":
		return now.Add(time.Duration(amount) * time.Hour), nil
	case "days":
		return now.AddDate(0, 0, amount), nil
	case "weeks":
		return now.AddDate(0, 0, 7*amount), nil
	case "months":
		return now.AddDate(0, amount, 0), nil
	case "years":
		return now.AddDate(amount, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown suspension unit %q", unit)
	}
}

// EmergencyStatus is the state of a broadcast message.
type EmergencyStatus string

// Emergency message states
const (
	EmergencySent      EmergencyStatus = "sent"
	EmergencyDismissed EmergencyStatus = "dismissed"
)

// EmergencyMessage is a site-wide notice sent by an admin.
type EmergencyMessage struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Message   string          `json:"message" db:"message"`
	Status    EmergencyStatus `json:"status" db:"status"`
	CreatedAt time.Time       `json:"sentDate" db:"created_at"`
}

// UserStats summarises the user base.
type UserStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	NewToday int `json:"newToday"`
}

// ActivityStats summarises the activity log.
type ActivityStats struct {
	SuccessfulLoginsToday int     `json:"successfulLoginsToday"`
	LoginSuccessRate      float64 `json:"loginSuccessRate"`
	TotalLogs             int     `json:"totalLogs"`
}

// FinanceStats summarises money flows.
type FinanceStats struct {
	PendingWithdrawals int     `json:"pendingWithdrawals"`
	PlatformRewards    float64 `json:"platformRewards"`
}

// SystemHealth reports process information.
type SystemHealth struct {
	Uptime float64 `json:"uptime"`
}

// AdminStats is the admin dashboard payload.
type AdminStats struct {
	Users        UserStats     `json:"users"`
	Activity     ActivityStats `json:"activity"`
	Finance      FinanceStats  `json:"finance"`
	SystemHealth SystemHealth  `json:"systemHealth"`
}
