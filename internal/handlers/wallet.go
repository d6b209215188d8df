package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// BalanceReader defines the interface that the wallet service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (models.Balance, error)
}

// BonusClaimer credits the daily bonus.
type BonusClaimer interface {
	ClaimDailyBonus(ctx context.Context, userID uuid.UUID) (float64, models.Balance, error)
}

// TaskCompleter credits a task reward.
type TaskCompleter interface {
	CompleteTask(ctx context.Context, userID uuid.UUID, taskID string, reward float64) (float64, models.Balance, error)
}

// Purchaser spends from the wallet.
type Purchaser interface {
	Purchase(ctx context.Context, userID uuid.UUID, amount float64, description string) (string, models.Balance, error)
}

// BalanceResponse represents the user's wallet
// swagger:model BalanceResponse
type BalanceResponse struct {
	Balance models.Balance `json:"balance"`
}

// CreditResponse is returned after a bonus or task reward is credited
// swagger:model CreditResponse
type CreditResponse struct {
	// Amount credited to the user
	// default: 0.003
	Amount  float64        `json:"amount"`
	Balance models.Balance `json:"balance"`
}

// CompleteTaskRequest represents a finished task
// swagger:model CompleteTaskRequest
type CompleteTaskRequest struct {
	// Task identifier
	TaskID string `json:"taskId"`

	// Gross reward, split 80/20 between user and platform
	// required: true
	// default: 0.05
	Reward float64 `json:"reward"`
}

// PurchaseRequest represents an airtime or data purchase
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// Amount to spend
	// required: true
	// default: 0.02
	Amount float64 `json:"amount"`

	// Description
	// default: airtime
	Description string `json:"description"`
}

// PurchaseResponse is returned after a successful purchase
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	TransactionID string         `json:"transactionId"`
	Balance       models.Balance `json:"balance"`
}

// NewBalanceHandler returns an HTTP handler for fetching the wallet.
// @Summary Get user balance
// @Description Returns the three balance buckets with totals
// @Tags user
// @Produce json
// @Success 200 {object} handlers.BalanceResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /user/balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}

// NewClaimBonusHandler returns an HTTP handler for the daily bonus.
// @Summary Claim daily bonus
// @Tags user
// @Produce json
// @Success 200 {object} handlers.CreditResponse
// @Failure 409 {object} handlers.ErrorResponse "Already claimed today"
// @Router /user/claim-bonus [post]
// @Security BearerAuth
func NewClaimBonusHandler(svc BonusClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		amount, balance, err := svc.ClaimDailyBonus(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CreditResponse{Amount: amount, Balance: balance})
	}
}

// NewCompleteTaskHandler returns an HTTP handler crediting a task reward.
// @Summary Complete task
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.CompleteTaskRequest true "Task"
// @Success 200 {object} handlers.CreditResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /user/complete-task [post]
// @Security BearerAuth
func NewCompleteTaskHandler(svc TaskCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CompleteTaskRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		amount, balance, err := svc.CompleteTask(r.Context(), claims.UserID, req.TaskID, req.Reward)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CreditResponse{Amount: amount, Balance: balance})
	}
}

// NewPurchaseHandler returns an HTTP handler for wallet purchases.
// @Summary Purchase airtime or data
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.PurchaseRequest true "Purchase"
// @Success 200 {object} handlers.PurchaseResponse
// @Failure 400 {object} handlers.ErrorResponse "Insufficient funds or invalid amount"
// @Router /user/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(svc Purchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req PurchaseRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		txID, balance, err := svc.Purchase(r.Context(), claims.UserID, req.Amount, req.Description)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PurchaseResponse{TransactionID: txID, Balance: balance})
	}
}
