package models

import "time"

// VerificationCode is a one-time code sent to a user's phone or email.
type VerificationCode struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"` // wrong guesses so far
}

// PaymentVerification is the gateway's view of a collected payment.
type PaymentVerification struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"` // major units
	Email     string  `json:"email"`
}

// Succeeded reports whether the payment was collected.
func (p *PaymentVerification) Succeeded() bool {
	return p.Status == "success"
}

// PaymentInit is returned when a payment session is opened.
type PaymentInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Bank is a payout bank supported by the gateway.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Slug string `json:"slug"`
}
