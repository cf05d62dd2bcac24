package paddle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Customer represents a customer entity, prefixed with `ctm_`.
type Customer struct {
	ID               string          `json:"id"`
	Name             string          `json:"name,omitempty"`
	Email            string          `json:"email"`
	MarketingConsent bool            `json:"marketing_consent"`
	Status           Status          `json:"status"`
	CustomData       json.RawMessage `json:"custom_data,omitempty"`
	// Locale is an IETF BCP 47 short form locale tag, defaulting to "en".
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListParams filters paginated customer listings.
type CustomerListParams struct {
	ListParams

	ID     []string `url:"id,comma,omitempty"`
	Email  []string `url:"email,comma,omitempty"`
	Status []Status `url:"status,comma,omitempty"`
	// Search matches against id, name and email.
	Search string `url:"search,omitempty"`
}

// CreateCustomerRequest holds the fields for creating a customer.
type CreateCustomerRequest struct {
	Email      string          `json:"email"`
	Name       string          `json:"name,omitempty"`
	Locale     string          `json:"locale,omitempty"`
	CustomData json.RawMessage `json:"custom_data,omitempty"`
}

// UpdateCustomerRequest holds the fields for updating a customer.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Email      *string         `json:"email,omitempty"`
	Name       *string         `json:"name,omitempty"`
	Locale     *string         `json:"locale,omitempty"`
	Status     *Status         `json:"status,omitempty"`
	CustomData json.RawMessage `json:"custom_data,omitempty"`
}

// CustomerService handles communication with the customer related endpoints.
type CustomerService struct {
	client *Client
}

// Get fetches a single customer by its Paddle ID.
func (s *CustomerService) Get(ctx context.Context, id string) (*Customer, error) {
	return doEntity[Customer](ctx, s.client, http.MethodGet, "/customers/"+id, nil)
}

// Create creates a new customer.
func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	return doEntity[Customer](ctx, s.client, http.MethodPost, "/customers", req)
}

// Update updates an existing customer.
func (s *CustomerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*Customer, error) {
	return doEntity[Customer](ctx, s.client, http.MethodPatch, "/customers/"+id, req)
}

// List returns a paginator over customers matching the given filters.
func (s *CustomerService) List(params *CustomerListParams) *Paginator[Customer] {
	return newPaginator[Customer](s.client, "/customers", params)
}
