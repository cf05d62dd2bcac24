package paddle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// SubscriptionStatus indicates the state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusPaused   SubscriptionStatus = "paused"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
)

// TimePeriod is a bounded period of time.
type TimePeriod struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// SubscriptionItem is one price on a subscription.
type SubscriptionItem struct {
	Status    string `json:"status"`
	Quantity  int    `json:"quantity"`
	Recurring bool   `json:"recurring"`
	// NextBilledAt is when this item is next scheduled to be billed.
	NextBilledAt *time.Time `json:"next_billed_at,omitempty"`
	Price        *Price     `json:"price,omitempty"`
	Product      *Product   `json:"product,omitempty"`
}

// Subscription represents a subscription entity, prefixed with `sub_`.
type Subscription struct {
	ID           string             `json:"id"`
	Status       SubscriptionStatus `json:"status"`
	CustomerID   string             `json:"customer_id"`
	AddressID    string             `json:"address_id"`
	BusinessID   string             `json:"business_id,omitempty"`
	CurrencyCode string             `json:"currency_code"`
	// CollectionMode is "automatic" (charged to a saved payment method) or
	// "manual" (invoiced).
	CollectionMode       string             `json:"collection_mode"`
	CurrentBillingPeriod *TimePeriod        `json:"current_billing_period,omitempty"`
	BillingCycle         *BillingCycle      `json:"billing_cycle,omitempty"`
	Items                []SubscriptionItem `json:"items"`
	CustomData           json.RawMessage    `json:"custom_data,omitempty"`
	StartedAt            *time.Time         `json:"started_at,omitempty"`
	FirstBilledAt        *time.Time         `json:"first_billed_at,omitempty"`
	NextBilledAt         *time.Time         `json:"next_billed_at,omitempty"`
	PausedAt             *time.Time         `json:"paused_at,omitempty"`
	CanceledAt           *time.Time         `json:"canceled_at,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// SubscriptionListParams filters paginated subscription listings.
type SubscriptionListParams struct {
	ListParams

	ID         []string             `url:"id,comma,omitempty"`
	CustomerID []string             `url:"customer_id,comma,omitempty"`
	PriceID    []string             `url:"price_id,comma,omitempty"`
	Status     []SubscriptionStatus `url:"status,comma,omitempty"`
}

// CancelSubscriptionRequest controls when a cancellation takes effect.
type CancelSubscriptionRequest struct {
	// EffectiveFrom is "next_billing_period" (default) or "immediately".
	EffectiveFrom string `json:"effective_from,omitempty"`
}

// SubscriptionService handles communication with the subscription related endpoints.
type SubscriptionService struct {
	client *Client
}

// Get fetches a single subscription by its Paddle ID.
func (s *SubscriptionService) Get(ctx context.Context, id string) (*Subscription, error) {
	return doEntity[Subscription](ctx, s.client, http.MethodGet, "/subscriptions/"+id, nil)
}

// Cancel cancels a subscription. By default Paddle schedules the cancellation
// for the end of the current billing period; the subscription stays active
// until the scheduled change takes effect.
func (s *SubscriptionService) Cancel(ctx context.Context, id string, req *CancelSubscriptionRequest) (*Subscription, error) {
	if req == nil {
		req = &CancelSubscriptionRequest{}
	}
	return doEntity[Subscription](ctx, s.client, http.MethodPost, "/subscriptions/"+id+"/cancel", req)
}

// List returns a paginator over subscriptions matching the given filters.
func (s *SubscriptionService) List(params *SubscriptionListParams) *Paginator[Subscription] {
	return newPaginator[Subscription](s.client, "/subscriptions", params)
}
