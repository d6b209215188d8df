package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCountry is assigned to users who sign up without a country.
const DefaultCountry = "Nigeria"

// User represents a registered account.
type User struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                 // Primary key
	Username     string    `json:"username" db:"username"`          // Display (full) name
	Email        string    `json:"email" db:"email"`                // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`            // bcrypt hash
	Phone        string    `json:"phone" db:"phone"`                // Phone number
	Country      string    `json:"country" db:"country"`            // Country of residence
	State        string    `json:"state" db:"state"`                // State of residence
	Gender       string    `json:"gender" db:"gender"`              // Gender
	IsActive     bool      `json:"isActive" db:"is_active"`         // Disabled users cannot log in
	IsVerified   bool      `json:"isVerified" db:"is_verified"`     // Set after code verification
	ReferralCode string    `json:"referralCode" db:"referral_code"` // Code other users sign up with
	ReferredBy   *string   `json:"referredBy" db:"referred_by"`     // Referral code used at signup
	LastLogin    time.Time `json:"lastLogin" db:"last_login"`       // Last successful login
	CreatedAt    time.Time `json:"registeredAt" db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`       // Last update timestamp
}

// SignupRequest carries the fields accepted at signup.
type SignupRequest struct {
	Username     string
	Email        string
	Password     string
	Phone        string
	Country      string
	State        string
	Gender       string
	ReferralCode string
}
