package paddle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Money is a monetary value in the currency's lowest denomination,
// e.g. Amount "1000" with CurrencyCode "USD" is $10.00.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// BillingCycle describes how often a price is charged.
type BillingCycle struct {
	// Interval is "day", "week", "month" or "year".
	Interval string `json:"interval"`
	// Frequency is how many intervals pass between charges.
	Frequency int `json:"frequency"`
}

// PriceQuantity bounds how many units of a price can be bought at once.
type PriceQuantity struct {
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

// Price represents a price entity, prefixed with `pri_`.
type Price struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Description  string          `json:"description"`
	Type         CatalogType     `json:"type"`
	Name         string          `json:"name,omitempty"`
	BillingCycle *BillingCycle   `json:"billing_cycle,omitempty"`
	TrialPeriod  *BillingCycle   `json:"trial_period,omitempty"`
	TaxMode      string          `json:"tax_mode"`
	UnitPrice    Money           `json:"unit_price"`
	Quantity     PriceQuantity   `json:"quantity"`
	Status       Status          `json:"status"`
	CustomData   json.RawMessage `json:"custom_data,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PriceListParams filters paginated price listings.
type PriceListParams struct {
	ListParams

	ID        []string `url:"id,comma,omitempty"`
	ProductID []string `url:"product_id,comma,omitempty"`
	Status    []Status `url:"status,comma,omitempty"`
	// Recurring filters for recurring (true) or one-time (false) prices.
	Recurring *bool `url:"recurring,omitempty"`
	// Include embeds related entities. Valid values: "product".
	Include []string `url:"include,comma,omitempty"`
}

// CreatePriceRequest holds the fields for creating a price.
type CreatePriceRequest struct {
	Description  string          `json:"description"`
	ProductID    string          `json:"product_id"`
	UnitPrice    Money           `json:"unit_price"`
	Name         string          `json:"name,omitempty"`
	BillingCycle *BillingCycle   `json:"billing_cycle,omitempty"`
	TrialPeriod  *BillingCycle   `json:"trial_period,omitempty"`
	TaxMode      string          `json:"tax_mode,omitempty"`
	Quantity     *PriceQuantity  `json:"quantity,omitempty"`
	CustomData   json.RawMessage `json:"custom_data,omitempty"`
}

// PriceService handles communication with the price related endpoints.
type PriceService struct {
	client *Client
}

// Get fetches a single price by its Paddle ID.
func (s *PriceService) Get(ctx context.Context, id string) (*Price, error) {
	return doEntity[Price](ctx, s.client, http.MethodGet, "/prices/"+id, nil)
}

// Create creates a new price for a product.
func (s *PriceService) Create(ctx context.Context, req *CreatePriceRequest) (*Price, error) {
	return doEntity[Price](ctx, s.client, http.MethodPost, "/prices", req)
}

// List returns a paginator over prices matching the given filters.
func (s *PriceService) List(params *PriceListParams) *Paginator[Price] {
	return newPaginator[Price](s.client, "/prices", params)
}
