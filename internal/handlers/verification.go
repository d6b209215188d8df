package handlers

import (
	"context"
	"net/http"
)

// CodeSender issues verification codes.
type CodeSender interface {
	Send(ctx context.Context, phone, email, method string) (string, error)
}

// CodeVerifier checks verification codes.
type CodeVerifier interface {
	Verify(ctx context.Context, codeID, value string) error
}

// SendVerificationRequest names where the code goes
// swagger:model SendVerificationRequest
type SendVerificationRequest struct {
	// default: +2348000000000
	Phone string `json:"phone"`

	// default: john@earnly.com
	Email string `json:"email"`

	// sms or email
	// default: sms
	Method string `json:"method"`
}

// SendVerificationResponse identifies the issued code. The code itself is never returned.
// swagger:model SendVerificationResponse
type SendVerificationResponse struct {
	CodeID string `json:"codeId"`
}

// VerifyCodeRequest submits a code
// swagger:model VerifyCodeRequest
type VerifyCodeRequest struct {
	// required: true
	CodeID string `json:"codeId"`

	// required: true
	// default: 123456
	Code string `json:"code"`
}

// NewSendVerificationHandler returns an HTTP handler issuing a verification code.
// @Summary Send verification code
// @Tags verification
// @Accept json
// @Produce json
// @Param request body handlers.SendVerificationRequest true "Destination"
// @Success 200 {object} handlers.SendVerificationResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /send-verification [post]
func NewSendVerificationHandler(svc CodeSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendVerificationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.Send(r.Context(), req.Phone, req.Email, req.Method)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SendVerificationResponse{CodeID: id})
	}
}

// NewVerifyCodeHandler returns an HTTP handler checking a verification code.
// @Summary Verify code
// @Tags verification
// @Accept json
// @Produce json
// @Param request body handlers.VerifyCodeRequest true "Code"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired code"
// @Router /verify-code [post]
func NewVerifyCodeHandler(svc CodeVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyCodeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.Verify(r.Context(), req.CodeID, req.Code); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Verification successful"})
	}
}
