package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Withdrawer requests and pays out a withdrawal.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID uuid.UUID, amount float64, bank models.BankDetails) (*models.WithdrawalRequest, error)
}

// WithdrawalHistoryReader lists a user's own withdrawals.
type WithdrawalHistoryReader interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalRequest, error)
}

// WithdrawalLister lists withdrawals for the admin console.
type WithdrawalLister interface {
	List(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalRequest, error)
}

// WithdrawalDecider resolves pending withdrawals.
type WithdrawalDecider interface {
	Approve(ctx context.Context, id uuid.UUID, adminEmail string) (*models.WithdrawalRequest, error)
	Deny(ctx context.Context, id uuid.UUID, reason, adminEmail string) (*models.WithdrawalRequest, error)
	Retry(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error)
}

// WithdrawRequest represents a payout to a bank account
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount in wallet units, at least 0.010
	// required: true
	// default: 0.05
	Amount float64 `json:"amount"`

	models.BankDetails
}

// WithdrawalResponse wraps a single withdrawal request
// swagger:model WithdrawalResponse
type WithdrawalResponse struct {
	// default: Withdrawal successful
	Message    string                    `json:"message"`
	Withdrawal *models.WithdrawalRequest `json:"withdrawal"`
}

// WithdrawalsResponse wraps a withdrawal listing
// swagger:model WithdrawalsResponse
type WithdrawalsResponse struct {
	Withdrawals []models.WithdrawalRequest `json:"withdrawals"`
}

// DenyRequest carries the reason a withdrawal was denied
// swagger:model DenyRequest
type DenyRequest struct {
	// default: No reason provided
	Reason string `json:"reason"`
}

// NewWithdrawHandler returns an HTTP handler paying out the user's wallet.
// @Summary Withdraw funds
// @Description Creates a withdrawal and transfers it to the bank account. The wallet is debited only after the transfer succeeds.
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 400 {object} handlers.ErrorResponse "Insufficient funds or invalid amount"
// @Failure 502 {object} handlers.ErrorResponse "Transfer failed, request left pending"
// @Router /user/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req WithdrawRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		withdrawal, err := svc.Withdraw(r.Context(), claims.UserID, req.Amount, req.BankDetails)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalResponse{Message: "Withdrawal successful", Withdrawal: withdrawal})
	}
}

// NewWithdrawalHistoryHandler returns an HTTP handler listing the user's withdrawals.
// @Summary List own withdrawals
// @Tags user
// @Produce json
// @Success 200 {object} handlers.WithdrawalsResponse
// @Router /user/withdrawals [get]
// @Security BearerAuth
func NewWithdrawalHistoryHandler(svc WithdrawalHistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		list, err := svc.ListForUser(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalsResponse{Withdrawals: list})
	}
}

// NewWithdrawalRequestsHandler returns an HTTP handler listing withdrawals.
// @Summary List withdrawal requests
// @Tags admin
// @Produce json
// @Param status query string false "pending, approved or denied"
// @Success 200 {object} handlers.WithdrawalsResponse
// @Router /admin/withdrawal-requests [get]
// @Security BearerAuth
func NewWithdrawalRequestsHandler(svc WithdrawalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := models.WithdrawalStatus(r.URL.Query().Get("status"))
		switch status {
		case "", models.WithdrawalPending, models.WithdrawalApproved, models.WithdrawalDenied:
		default:
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
			return
		}

		list, err := svc.List(r.Context(), status)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalsResponse{Withdrawals: list})
	}
}

// NewApproveWithdrawalHandler returns an HTTP handler approving a pending withdrawal.
// @Summary Approve withdrawal
// @Tags admin
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 400 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Not pending"
// @Router /admin/withdrawal/{id}/approve [post]
// @Security BearerAuth
func NewApproveWithdrawalHandler(svc WithdrawalDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		withdrawal, err := svc.Approve(r.Context(), id, claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalResponse{Message: "Withdrawal approved", Withdrawal: withdrawal})
	}
}

// NewDenyWithdrawalHandler returns an HTTP handler denying a pending withdrawal.
// @Summary Deny withdrawal
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Param request body handlers.DenyRequest false "Reason"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Not pending"
// @Router /admin/withdrawal/{id}/deny [post]
// @Security BearerAuth
func NewDenyWithdrawalHandler(svc WithdrawalDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		// the body is optional
		var req DenyRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
			return
		}

		withdrawal, err := svc.Deny(r.Context(), id, req.Reason, claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalResponse{Message: "Withdrawal denied", Withdrawal: withdrawal})
	}
}

// NewRetryWithdrawalHandler returns an HTTP handler retrying the payout of a pending withdrawal.
// @Summary Retry withdrawal transfer
// @Tags admin
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 502 {object} handlers.ErrorResponse "Transfer failed"
// @Router /admin/withdrawal/{id}/retry [post]
// @Security BearerAuth
func NewRetryWithdrawalHandler(svc WithdrawalDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		withdrawal, err := svc.Retry(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawalResponse{Message: "Withdrawal successful", Withdrawal: withdrawal})
	}
}
