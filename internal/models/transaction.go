package models

// Transaction operations
const (
	OperationCredit   = "credit"
	OperationPurchase = "purchase"
	OperationWithdraw = "withdraw"
)

// Transaction represents a wallet movement published to the event stream.
type Transaction struct {
	TransactionID string  `json:"transaction_id"`   // TransactionID is a unique identifier for the transaction.
	Timestamp     int64   `json:"timestamp"`        // Timestamp is the Unix timestamp (in seconds) when the transaction occurred.
	Amount        float64 `json:"amount"`           // Amount is the monetary value of the transaction.
	UserID        string  `json:"user_id"`          // UserID is the identifier of the wallet owner.
	Operation     string  `json:"operation"`        // Operation is one of credit, purchase or withdraw.
	Bucket        string  `json:"bucket,omitempty"` // Bucket is the credited bucket for credits.
}

// Notification events
const (
	EventWelcome          = "welcome"
	EventWithdrawalStatus = "withdrawal_status"
	EventVerificationCode = "verification_code"
)

// Notification is a message for the notification pipeline.
type Notification struct {
	UserID    string         `json:"user_id"`
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp int64          `json:"timestamp"`
}
