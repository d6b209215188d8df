package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/sbilibin2017/earnly/internal/models"
)

// SignatureHeader carries the gateway's HMAC of a webhook body.
const SignatureHeader = "x-paystack-signature"

const maxWebhookBody = 1 << 20

// PaymentInitializer opens and checks payment sessions.
type PaymentInitializer interface {
	Initialize(ctx context.Context, email string, amount float64, purpose, reference string) (*models.PaymentInit, error)
	Verify(ctx context.Context, reference string) (*models.PaymentVerification, error)
}

// BankLister returns payout banks.
type BankLister interface {
	Banks(ctx context.Context) ([]models.Bank, error)
}

// WebhookProcessor authenticates and records gateway events.
type WebhookProcessor interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

// InitializePaymentRequest opens a payment session
// swagger:model InitializePaymentRequest
type InitializePaymentRequest struct {
	// Amount in NGN
	// required: true
	// default: 1000
	Amount float64 `json:"amount"`

	// subscription or withdrawal
	// default: subscription
	Purpose string `json:"purpose"`

	// Optional reference, generated when empty
	Reference string `json:"reference"`
}

// InitializePaymentResponse is the payment session
// swagger:model InitializePaymentResponse
type InitializePaymentResponse struct {
	Payment *models.PaymentInit `json:"payment"`
}

// VerifyPaymentRequest names a payment to check
// swagger:model VerifyPaymentRequest
type VerifyPaymentRequest struct {
	// required: true
	Reference string `json:"reference"`
}

// VerifyPaymentResponse is the verified payment
// swagger:model VerifyPaymentResponse
type VerifyPaymentResponse struct {
	Payment *models.PaymentVerification `json:"payment"`
}

// BanksResponse lists payout banks
// swagger:model BanksResponse
type BanksResponse struct {
	Banks []models.Bank `json:"banks"`
}

// NewInitializePaymentHandler returns an HTTP handler opening a payment session.
// @Summary Initialize payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.InitializePaymentRequest true "Payment"
// @Success 200 {object} handlers.InitializePaymentResponse
// @Failure 502 {object} handlers.ErrorResponse "Gateway unavailable"
// @Router /payment/initialize [post]
// @Security BearerAuth
func NewInitializePaymentHandler(svc PaymentInitializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req InitializePaymentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := svc.Initialize(r.Context(), claims.Email, req.Amount, req.Purpose, req.Reference)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, InitializePaymentResponse{Payment: session})
	}
}

// NewVerifyPaymentHandler returns an HTTP handler checking a payment.
// @Summary Verify payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.VerifyPaymentRequest true "Reference"
// @Success 200 {object} handlers.VerifyPaymentResponse
// @Failure 400 {object} handlers.ErrorResponse "Payment not successful"
// @Router /payment/verify [post]
// @Security BearerAuth
func NewVerifyPaymentHandler(svc PaymentInitializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyPaymentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		payment, err := svc.Verify(r.Context(), req.Reference)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, VerifyPaymentResponse{Payment: payment})
	}
}

// NewBanksHandler returns an HTTP handler listing payout banks.
// @Summary List banks
// @Tags payments
// @Produce json
// @Success 200 {object} handlers.BanksResponse
// @Router /banks [get]
func NewBanksHandler(svc BankLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banks, err := svc.Banks(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BanksResponse{Banks: banks})
	}
}

// NewWebhookHandler returns an HTTP handler receiving gateway events.
// @Summary Paystack webhook
// @Tags payments
// @Accept json
// @Produce json
// @Param x-paystack-signature header string true "HMAC-SHA512 of the body"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Bad signature"
// @Router /paystack/webhook [post]
func NewWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.HandleWebhook(r.Context(), body, r.Header.Get(SignatureHeader)); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}
