package models

import "errors"

// Domain errors. Each maps to a rejected request at the HTTP boundary.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAlreadyClaimed    = errors.New("daily bonus already claimed")
	ErrInvalidState      = errors.New("invalid state transition")
	ErrTransferFailed    = errors.New("transfer failed")
	ErrNotFound          = errors.New("not found")
	ErrUnknownBucket     = errors.New("unknown balance bucket")

	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)
