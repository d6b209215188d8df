package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// EmergencySender broadcasts a site-wide notice.
type EmergencySender interface {
	Send(ctx context.Context, message, adminEmail string) (*models.EmergencyMessage, error)
	Dismiss(ctx context.Context, id uuid.UUID, adminEmail string) error
}

// EmergencyReader returns the notice in effect.
type EmergencyReader interface {
	Active(ctx context.Context) (*models.EmergencyMessage, error)
}

// EmergencyRequest carries a notice
// swagger:model EmergencyRequest
type EmergencyRequest struct {
	// required: true
	// default: Payouts are delayed today
	Message string `json:"message"`
}

// EmergencyResponse wraps the current notice, null when there is none
// swagger:model EmergencyResponse
type EmergencyResponse struct {
	Message *models.EmergencyMessage `json:"message"`
}

// NewSendEmergencyHandler returns an HTTP handler broadcasting an emergency message.
// @Summary Send emergency message
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.EmergencyRequest true "Message"
// @Success 201 {object} handlers.EmergencyResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /admin/emergency-message [post]
// @Security BearerAuth
func NewSendEmergencyHandler(svc EmergencySender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req EmergencyRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		msg, err := svc.Send(r.Context(), req.Message, claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, EmergencyResponse{Message: msg})
	}
}

// NewDismissEmergencyHandler returns an HTTP handler withdrawing an emergency message.
// @Summary Dismiss emergency message
// @Tags admin
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/emergency-message/{id} [delete]
// @Security BearerAuth
func NewDismissEmergencyHandler(svc EmergencySender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Dismiss(r.Context(), id, claims.Email); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Emergency message dismissed"})
	}
}

// NewActiveEmergencyHandler returns an HTTP handler for the notice currently in effect.
// @Summary Current emergency message
// @Tags public
// @Produce json
// @Success 200 {object} handlers.EmergencyResponse
// @Router /emergency-message [get]
func NewActiveEmergencyHandler(svc EmergencyReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := svc.Active(r.Context())
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, EmergencyResponse{Message: msg})
	}
}
