package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// ChannelCatalog lists what can be subscribed to.
type ChannelCatalog interface {
	Plans() []models.Plan
	Channels(ctx context.Context) ([]models.Channel, error)
}

// Subscriber manages a user's channel subscription.
type Subscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID, plan string, channels []int64, reference string) (*models.Subscription, error)
	Active(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
	HasAccess(ctx context.Context, userID uuid.UUID, channelID int64) (bool, error)
}

// ChannelsResponse lists channels and plans
// swagger:model ChannelsResponse
type ChannelsResponse struct {
	Channels []models.Channel `json:"channels"`
	Plans    []models.Plan    `json:"plans"`
}

// SubscribeRequest buys a plan
// swagger:model SubscribeRequest
type SubscribeRequest struct {
	// basic, standard or premium
	// required: true
	// default: basic
	Plan string `json:"plan"`

	// Channel IDs, ignored for premium
	SelectedChannels []int64 `json:"selectedChannels"`

	// Paystack reference of the payment
	// required: true
	PaymentReference string `json:"paymentReference"`
}

// SubscriptionResponse wraps a subscription, null when there is none
// swagger:model SubscriptionResponse
type SubscriptionResponse struct {
	Subscription *models.Subscription `json:"subscription"`
}

// AccessResponse reports channel access
// swagger:model AccessResponse
type AccessResponse struct {
	ChannelID int64 `json:"channelId"`
	HasAccess bool  `json:"hasAccess"`
}

// NewChannelsHandler returns an HTTP handler listing channels and plans.
// @Summary List channels
// @Tags eytv
// @Produce json
// @Success 200 {object} handlers.ChannelsResponse
// @Router /eytv/channels [get]
func NewChannelsHandler(svc ChannelCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := svc.Channels(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ChannelsResponse{Channels: channels, Plans: svc.Plans()})
	}
}

// NewSubscribeHandler returns an HTTP handler buying a subscription.
// @Summary Subscribe
// @Tags eytv
// @Accept json
// @Produce json
// @Param request body handlers.SubscribeRequest true "Subscription"
// @Success 201 {object} handlers.SubscriptionResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid plan, channels or payment"
// @Failure 409 {object} handlers.ErrorResponse "Payment reference already used"
// @Router /eytv/subscribe [post]
// @Security BearerAuth
func NewSubscribeHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req SubscribeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		sub, err := svc.Subscribe(r.Context(), claims.UserID, req.Plan, req.SelectedChannels, req.PaymentReference)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, SubscriptionResponse{Subscription: sub})
	}
}

// NewActiveSubscriptionHandler returns an HTTP handler for the user's current subscription.
// @Summary Current subscription
// @Tags eytv
// @Produce json
// @Success 200 {object} handlers.SubscriptionResponse
// @Router /eytv/user/subscription [get]
// @Security BearerAuth
func NewActiveSubscriptionHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		sub, err := svc.Active(r.Context(), claims.UserID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SubscriptionResponse{Subscription: sub})
	}
}

// NewChannelAccessHandler returns an HTTP handler checking access to a channel.
// @Summary Channel access
// @Tags eytv
// @Produce json
// @Param id path int true "Channel ID"
// @Success 200 {object} handlers.AccessResponse
// @Router /eytv/channel/{id}/access [get]
// @Security BearerAuth
func NewChannelAccessHandler(svc Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		channelID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
			return
		}

		access, err := svc.HasAccess(r.Context(), claims.UserID, channelID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AccessResponse{ChannelID: channelID, HasAccess: access})
	}
}
