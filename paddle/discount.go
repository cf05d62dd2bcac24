package paddle

import (
	"context"
	"net/http"
	"time"
)

// DiscountType describes how a discount is applied.
type DiscountType string

const (
	DiscountTypeFlat        DiscountType = "flat"
	DiscountTypeFlatPerSeat DiscountType = "flat_per_seat"
	DiscountTypePercentage  DiscountType = "percentage"
)

// Discount represents a discount entity, prefixed with `dsc_`.
type Discount struct {
	ID          string       `json:"id"`
	Status      Status       `json:"status"`
	Description string       `json:"description"`
	// EnabledForCheckout reports whether the discount can be applied by
	// customers at checkout using Code.
	EnabledForCheckout bool   `json:"enabled_for_checkout"`
	Code               string `json:"code,omitempty"`
	Type               DiscountType `json:"type"`
	// Amount is a percentage for percentage discounts, otherwise an amount in
	// the lowest denomination of CurrencyCode.
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code,omitempty"`
	// Recur reports whether the discount applies to recurring payments.
	Recur bool `json:"recur"`
	// MaximumRecurringIntervals is how many subscription billing periods the
	// discount recurs for; nil means forever.
	MaximumRecurringIntervals *int `json:"maximum_recurring_intervals,omitempty"`
	// UsageLimit caps how many times the discount can be redeemed; nil means
	// unlimited.
	UsageLimit *int       `json:"usage_limit,omitempty"`
	TimesUsed  int        `json:"times_used"`
	RestrictTo []string   `json:"restrict_to,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// DiscountListParams filters paginated discount listings.
type DiscountListParams struct {
	ListParams

	ID     []string `url:"id,comma,omitempty"`
	Code   []string `url:"code,comma,omitempty"`
	Status []Status `url:"status,comma,omitempty"`
}

// DiscountService handles communication with the discount related endpoints.
type DiscountService struct {
	client *Client
}

// Get fetches a single discount by its Paddle ID.
func (s *DiscountService) Get(ctx context.Context, id string) (*Discount, error) {
	return doEntity[Discount](ctx, s.client, http.MethodGet, "/discounts/"+id, nil)
}

// List returns a paginator over discounts matching the given filters.
func (s *DiscountService) List(params *DiscountListParams) *Paginator[Discount] {
	return newPaginator[Discount](s.client, "/discounts", params)
}
