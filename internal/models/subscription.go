package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SubscriptionStatus is the state of a channel subscription.
type SubscriptionStatus string

// Subscription states
const (
	SubscriptionActive  SubscriptionStatus = "ACTIVE"
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
)

// Plan names
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// Plan describes a purchasable channel bundle. Prices are in NGN.
type Plan struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MaxChannels int     `json:"maxChannels"`
}

// Plans lists the available subscription plans.
var Plans = map[string]Plan{
	PlanBasic:    {Name: PlanBasic, Price: 1000, MaxChannels: 2},
	PlanStandard: {Name: PlanStandard, Price: 3000, MaxChannels: 10},
	PlanPremium:  {Name: PlanPremium, Price: 6000, MaxChannels: 200},
}

// Subscription grants access to a set of channels until EndDate.
type Subscription struct {
	ID               uuid.UUID          `json:"id" db:"id"`
	UserID           uuid.UUID          `json:"userId" db:"user_id"`
	Plan             string             `json:"plan" db:"plan"`
	Price            float64            `json:"price" db:"price"`
	SelectedChannels pq.Int64Array      `json:"selectedChannels" db:"selected_channels"`
	StartDate        time.Time          `json:"startDate" db:"start_date"`
	EndDate          time.Time          `json:"endDate" db:"end_date"`
	Status           SubscriptionStatus `json:"status" db:"status"`
	PaymentReference string             `json:"paymentReference" db:"payment_reference"`
}

// IsCurrent reports whether the subscription is active at now.
func (s *Subscription) IsCurrent(now time.Time) bool {
	return s.Status == SubscriptionActive && s.EndDate.After(now)
}

// HasAccess reports whether the subscription covers the channel.
func (s *Subscription) HasAccess(channelID int64, now time.Time) bool {
	if !s.IsCurrent(now) {
		return false
	}
	if s.Plan == PlanPremium {
		return true
	}
	for _, id := range s.SelectedChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

// Channel is a streamable TV channel.
type Channel struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Category  string `json:"category" db:"category"`
	StreamURL string `json:"streamUrl" db:"stream_url"`
}

// DefaultChannels is the catalogue installed on an empty store.
var DefaultChannels = []Channel{
	{ID: 1, Name: "Channels TV", Category: "news"},
	{ID: 2, Name: "Arise News", Category: "news"},
	{ID: 3, Name: "SuperSport", Category: "sports"},
	{ID: 4, Name: "Nollywood Classics", Category: "movies"},
	{ID: 5, Name: "Cartoon Network", Category: "kids"},
}
